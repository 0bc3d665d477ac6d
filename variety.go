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
	"math/rand"
	"time"
)

// CandidateSelector picks one tile from the candidates found for a cell.
// candidates is never empty and sorted by distance.
type CandidateSelector interface {
	Select(rnd *rand.Rand, candidates []Neighbor) int
}

// RandomCandidateSelector picks a candidate uniformly at random, the distance
// is ignored. This spreads similar tiles over the mosaic instead of repeating
// the single best tile in areas of the same color.
type RandomCandidateSelector struct{}

// Select implements CandidateSelector.
func (RandomCandidateSelector) Select(rnd *rand.Rand, candidates []Neighbor) int {
	if len(candidates) == 1 {
		return candidates[0].Tile
	}
	return candidates[rnd.Intn(len(candidates))].Tile
}

// BestCandidateSelector always picks the nearest candidate.
type BestCandidateSelector struct{}

// Select implements CandidateSelector.
func (BestCandidateSelector) Select(rnd *rand.Rand, candidates []Neighbor) int {
	return candidates[0].Tile
}

// rowRand returns the random generator used for grid row j.
// Each row gets its own generator seeded from seed and j, so the selection
// doesn't depend on the number of workers or the order in which rows are
// processed.
func rowRand(seed int64, row int) *rand.Rand {
	rowSeed := splitMix64(uint64(seed) ^ splitMix64(uint64(row)))
	return rand.New(rand.NewSource(int64(rowSeed)))
}

// TimeSeed returns a seed based on the current time.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
