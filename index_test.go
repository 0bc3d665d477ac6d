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
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

var indexBuilders = []struct {
	name  string
	build IndexBuilder
}{
	{"kdtree", KDTreeIndexBuilder},
	{"linear", LinearIndexBuilder},
}

// coarseColors returns random colors from a small set of values, so there
// are many duplicates and equal distances.
func coarseColors(n int, seed int64) []AverageColor {
	rnd := rand.New(rand.NewSource(seed))
	res := make([]AverageColor, n)
	for i := range res {
		res[i] = AverageColor{
			float64(rnd.Intn(4) * 80),
			float64(rnd.Intn(4) * 80),
			float64(rnd.Intn(4) * 80),
		}
	}
	return res
}

// bruteForce sorts all colors by distance and index.
func bruteForce(colors []AverageColor, c AverageColor, k int) []Neighbor {
	all := make([]Neighbor, len(colors))
	for i, other := range colors {
		all[i] = Neighbor{Tile: i, Distance: colorDistance(c, other)}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].before(all[j]) })
	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

func TestIndexMatchesBruteForce(t *testing.T) {
	colors := coarseColors(200, 1)
	rnd := rand.New(rand.NewSource(2))
	queries := make([]AverageColor, 30)
	for i := range queries {
		queries[i] = AverageColor{rnd.Float64() * 255, rnd.Float64() * 255, rnd.Float64() * 255}
	}
	// some queries exactly on colors of the library
	queries = append(queries, colors[0], colors[10], AverageColor{80, 80, 80})

	for _, builder := range indexBuilders {
		index, err := builder.build(colors)
		if err != nil {
			t.Fatalf("%s: failed to build index: %v", builder.name, err)
		}
		if index.Len() != len(colors) {
			t.Errorf("%s: expected Len %d, got %d", builder.name, len(colors), index.Len())
		}
		for _, k := range []int{1, 5, 17, 200, 250} {
			for _, q := range queries {
				got, queryErr := index.Query(q, k)
				if queryErr != nil {
					t.Fatalf("%s: query failed: %v", builder.name, queryErr)
				}
				want := bruteForce(colors, q, k)
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("%s: query %v with k = %d: expected %v, got %v", builder.name, q, k, want, got)
				}
			}
		}
	}
}

func TestIndexResultOrder(t *testing.T) {
	colors := coarseColors(50, 3)
	for _, builder := range indexBuilders {
		index, err := builder.build(colors)
		if err != nil {
			t.Fatalf("%s: failed to build index: %v", builder.name, err)
		}
		res, queryErr := index.Query(AverageColor{100, 100, 100}, 20)
		if queryErr != nil {
			t.Fatalf("%s: query failed: %v", builder.name, queryErr)
		}
		if len(res) != 20 {
			t.Fatalf("%s: expected 20 results, got %d", builder.name, len(res))
		}
		for i := 1; i < len(res); i++ {
			prev, next := res[i-1], res[i]
			if next.Distance < prev.Distance {
				t.Errorf("%s: distances not ascending at %d: %v", builder.name, i, res)
			}
			if next.Distance == prev.Distance && next.Tile < prev.Tile {
				t.Errorf("%s: tie not ordered by index at %d: %v", builder.name, i, res)
			}
		}
	}
}

func TestIndexClampK(t *testing.T) {
	colors := []AverageColor{{0, 0, 0}, {255, 0, 0}, {0, 255, 0}}
	for _, builder := range indexBuilders {
		index, err := builder.build(colors)
		if err != nil {
			t.Fatalf("%s: failed to build index: %v", builder.name, err)
		}
		res, queryErr := index.Query(AverageColor{10, 10, 10}, 5)
		if queryErr != nil {
			t.Fatalf("%s: expected k = 5 to be clamped, got error %v", builder.name, queryErr)
		}
		if len(res) != 3 {
			t.Errorf("%s: expected 3 results, got %d", builder.name, len(res))
		}
		if res[0].Tile != 0 {
			t.Errorf("%s: expected tile 0 to be nearest, got %d", builder.name, res[0].Tile)
		}
	}
}

func TestIndexInvalidK(t *testing.T) {
	colors := []AverageColor{{0, 0, 0}, {255, 0, 0}}
	for _, builder := range indexBuilders {
		index, err := builder.build(colors)
		if err != nil {
			t.Fatalf("%s: failed to build index: %v", builder.name, err)
		}
		for _, k := range []int{0, -1} {
			if _, queryErr := index.Query(AverageColor{}, k); !errors.Is(queryErr, ErrInvalidK) {
				t.Errorf("%s: expected ErrInvalidK for k = %d, got %v", builder.name, k, queryErr)
			}
		}
	}
}

func TestIndexEmpty(t *testing.T) {
	for _, builder := range indexBuilders {
		if _, err := builder.build(nil); !errors.Is(err, ErrEmptyLibrary) {
			t.Errorf("%s: expected ErrEmptyLibrary, got %v", builder.name, err)
		}
	}
}

func TestIndexCopiesColors(t *testing.T) {
	colors := []AverageColor{{0, 0, 0}, {100, 100, 100}}
	for _, builder := range indexBuilders {
		index, err := builder.build(colors)
		if err != nil {
			t.Fatalf("%s: failed to build index: %v", builder.name, err)
		}
		colors[0] = AverageColor{255, 255, 255}
		res, _ := index.Query(AverageColor{0, 0, 0}, 1)
		if res[0].Tile != 0 || res[0].Distance != 0 {
			t.Errorf("%s: index changed after modifying the input: %v", builder.name, res)
		}
		colors[0] = AverageColor{0, 0, 0}
	}
}
