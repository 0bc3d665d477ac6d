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
	"container/heap"
)

// Neighbor is a tile (by index in the library) together with its distance to
// a query color.
type Neighbor struct {
	Tile     int
	Distance float64
}

// before reports whether n is ordered before other: smaller distance first,
// equal distances ordered by the lower tile index.
func (n Neighbor) before(other Neighbor) bool {
	if n.Distance != other.Distance {
		return n.Distance < other.Distance
	}
	return n.Tile < other.Tile
}

// neighborHeapInterface is an internal type that implements heap.Interface.
// The root is the worst entry so truncating pops the worst neighbor.
type neighborHeapInterface []Neighbor

func (h neighborHeapInterface) Len() int {
	return len(h)
}

func (h neighborHeapInterface) Less(i, j int) bool {
	return h[j].before(h[i])
}

func (h neighborHeapInterface) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *neighborHeapInterface) Push(x interface{}) {
	*h = append(*h, x.(Neighbor))
}

func (h *neighborHeapInterface) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// NeighborHeap is a container that keeps the bound best neighbors added to
// it.
type NeighborHeap struct {
	interf *neighborHeapInterface
	bound  int
}

// NewNeighborHeap returns a new heap with the given bound, bound must be
// ≥ 1.
func NewNeighborHeap(bound int) *NeighborHeap {
	if bound < 1 {
		bound = 1
	}
	interf := make(neighborHeapInterface, 0, bound+1)
	return &NeighborHeap{&interf, bound}
}

// Add adds a new entry to the heap, truncating the heap to its bound.
func (h *NeighborHeap) Add(n Neighbor) {
	if h.interf.Len() == h.bound {
		// full: only insert if better than the current worst
		if !n.before((*h.interf)[0]) {
			return
		}
		(*h.interf)[0] = n
		heap.Fix(h.interf, 0)
		return
	}
	heap.Push(h.interf, n)
}

// Len returns the number of entries in the heap.
func (h *NeighborHeap) Len() int {
	return h.interf.Len()
}

// GetView returns the sorted collection of entries in the heap, that is
// neighbors with smallest distance first.
// The complexity is O(n * log(n)) where n is the size of the heap.
func (h *NeighborHeap) GetView() []Neighbor {
	n := h.interf.Len()
	tmp := make(neighborHeapInterface, n)
	copy(tmp, *h.interf)
	res := make([]Neighbor, n)
	for i := 0; i < n; i++ {
		x := heap.Pop(&tmp).(Neighbor)
		res[n-i-1] = x
	}
	return res
}
