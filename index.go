// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"sort"

	"github.com/kyroy/kdtree"
	"github.com/kyroy/kdtree/points"
)

// ColorIndex answers "k nearest tiles" queries for a color. It is built once
// from the average colors of a tile library, index i in the index is tile i in
// the library.
//
// Query returns min(k, Len()) neighbors sorted by ascending (euclidean)
// distance, ties are broken by the lower tile index. A k greater than Len() is
// clamped, k < 1 returns ErrInvalidK.
//
// Implementations are read-only after creation and must be safe for concurrent
// use.
type ColorIndex interface {
	Len() int
	Query(c AverageColor, k int) ([]Neighbor, error)
}

// IndexBuilder creates a ColorIndex from the average colors of a library.
type IndexBuilder func(colors []AverageColor) (ColorIndex, error)

// KDTreeIndexBuilder is an IndexBuilder creating a KDTreeIndex.
func KDTreeIndexBuilder(colors []AverageColor) (ColorIndex, error) {
	return NewKDTreeIndex(colors)
}

// LinearIndexBuilder is an IndexBuilder creating a LinearIndex.
func LinearIndexBuilder(colors []AverageColor) (ColorIndex, error) {
	return NewLinearIndex(colors)
}

// clampK validates k and clamps it to the number of colors n.
func clampK(k, n int) (int, error) {
	if k < 1 {
		return 0, ErrInvalidK
	}
	return IntMin(k, n), nil
}

// LinearIndex compares a query with each color, keeping the k best in a
// NeighborHeap. It has no build cost and is fine for small libraries.
type LinearIndex struct {
	colors []AverageColor
}

// NewLinearIndex returns a new linear index, colors must not be empty.
func NewLinearIndex(colors []AverageColor) (*LinearIndex, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyLibrary
	}
	cpy := make([]AverageColor, len(colors))
	copy(cpy, colors)
	return &LinearIndex{colors: cpy}, nil
}

// Len returns the number of indexed colors.
func (index *LinearIndex) Len() int {
	return len(index.colors)
}

// Query implements ColorIndex.
func (index *LinearIndex) Query(c AverageColor, k int) ([]Neighbor, error) {
	k, kErr := clampK(k, len(index.colors))
	if kErr != nil {
		return nil, kErr
	}
	h := NewNeighborHeap(k)
	for i, other := range index.colors {
		h.Add(Neighbor{Tile: i, Distance: colorDistance(c, other)})
	}
	return h.GetView(), nil
}

// KDTreeIndex is a ColorIndex backed by a k-d tree over the RGB space.
type KDTreeIndex struct {
	tree   *kdtree.KDTree
	colors []AverageColor
}

// NewKDTreeIndex builds the k-d tree, colors must not be empty.
func NewKDTreeIndex(colors []AverageColor) (*KDTreeIndex, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyLibrary
	}
	cpy := make([]AverageColor, len(colors))
	copy(cpy, colors)
	pts := make([]kdtree.Point, len(cpy))
	for i, c := range cpy {
		pts[i] = points.NewPoint([]float64{c[0], c[1], c[2]}, i)
	}
	return &KDTreeIndex{tree: kdtree.New(pts), colors: cpy}, nil
}

// Len returns the number of indexed colors.
func (index *KDTreeIndex) Len() int {
	return len(index.colors)
}

// Query implements ColorIndex.
//
// The tree does not order equal distances, so the request is widened until
// the last returned neighbor is strictly farther away than the k-th one. Then
// all candidates with the k-th distance are known and can be ordered by index.
func (index *KDTreeIndex) Query(c AverageColor, k int) ([]Neighbor, error) {
	n := len(index.colors)
	k, kErr := clampK(k, n)
	if kErr != nil {
		return nil, kErr
	}
	query := points.NewPoint([]float64{c[0], c[1], c[2]}, nil)
	m := IntMin(k+1, n)
	for {
		found := index.tree.KNN(query, m)
		res := make([]Neighbor, len(found))
		for i, p := range found {
			id := p.(*points.Point).Data.(int)
			res[i] = Neighbor{Tile: id, Distance: colorDistance(c, index.colors[id])}
		}
		sort.Slice(res, func(i, j int) bool {
			return res[i].before(res[j])
		})
		if m >= n || len(res) < m || res[m-1].Distance > res[k-1].Distance {
			return res[:IntMin(k, len(res))], nil
		}
		m = IntMin(2*m, n)
	}
}
