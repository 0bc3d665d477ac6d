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
	"context"
)

// AssignmentMap contains the id of the tile chosen for each cell, stored row
// by row like TargetGrid.
type AssignmentMap struct {
	Width, Height int
	Tiles         []uint32
}

// NewAssignmentMap returns a map with all entries set to tile 0.
func NewAssignmentMap(width, height int) *AssignmentMap {
	return &AssignmentMap{
		Width:  width,
		Height: height,
		Tiles:  make([]uint32, width*height),
	}
}

// At returns the tile of the cell in column i and row j.
func (m *AssignmentMap) At(i, j int) uint32 {
	return m.Tiles[j*m.Width+i]
}

// Set sets the tile of the cell in column i and row j.
func (m *AssignmentMap) Set(i, j int, tile uint32) {
	m.Tiles[j*m.Width+i] = tile
}

// ResolveOptions are the parameters of ResolveCells.
type ResolveOptions struct {
	// Candidates is the number of nearest tiles to choose from.
	Candidates int
	// Seed seeds the random choice.
	Seed int64
	// Selector picks the tile from the candidates, nil means
	// RandomCandidateSelector.
	Selector    CandidateSelector
	NumRoutines int
	Progress    ProgressFunc
}

// ResolveCells assigns a tile to each cell of grid: it queries the
// opts.Candidates nearest tiles and lets the selector choose one of them.
//
// Rows are processed concurrently, each row with its own random generator
// (see rowRand). Thus the result only depends on the grid, the index and the
// options.
// Progress is reported in PhaseResolve once per cell.
func ResolveCells(ctx context.Context, index ColorIndex, grid *TargetGrid,
	opts ResolveOptions) (*AssignmentMap, error) {
	if index.Len() == 0 {
		return nil, ErrEmptyLibrary
	}
	selector := opts.Selector
	if selector == nil {
		selector = RandomCandidateSelector{}
	}
	res := NewAssignmentMap(grid.Width, grid.Height)
	progress := newProgressCounter(PhaseResolve, grid.Len(), opts.Progress)
	err := runJobs(ctx, grid.Height, opts.NumRoutines, func(j int) error {
		rnd := rowRand(opts.Seed, j)
		for i := 0; i < grid.Width; i++ {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			candidates, queryErr := index.Query(grid.At(i, j), opts.Candidates)
			if queryErr != nil {
				return queryErr
			}
			res.Set(i, j, uint32(selector.Select(rnd, candidates)))
		}
		return nil
	}, func(j int) int { return grid.Width }, progress)
	if err != nil {
		return nil, err
	}
	return res, nil
}
