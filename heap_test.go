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
	"reflect"
	"testing"
)

func TestNeighborHeapBound(t *testing.T) {
	h := NewNeighborHeap(3)
	for i, d := range []float64{5, 1, 4, 2, 3} {
		h.Add(Neighbor{Tile: i, Distance: d})
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	want := []Neighbor{{1, 1}, {3, 2}, {4, 3}}
	if got := h.GetView(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNeighborHeapTies(t *testing.T) {
	h := NewNeighborHeap(2)
	h.Add(Neighbor{Tile: 2, Distance: 1})
	h.Add(Neighbor{Tile: 0, Distance: 1})
	h.Add(Neighbor{Tile: 1, Distance: 1})
	want := []Neighbor{{0, 1}, {1, 1}}
	if got := h.GetView(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected ties ordered by index %v, got %v", want, got)
	}
}

func TestNeighborHeapViewKeepsHeap(t *testing.T) {
	h := NewNeighborHeap(0)
	h.Add(Neighbor{Tile: 7, Distance: 2})
	h.Add(Neighbor{Tile: 8, Distance: 1})
	first := h.GetView()
	second := h.GetView()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("GetView changed the heap: %v vs %v", first, second)
	}
	if want := []Neighbor{{8, 1}}; !reflect.DeepEqual(first, want) {
		t.Errorf("expected bound 1 heap %v, got %v", want, first)
	}
}
