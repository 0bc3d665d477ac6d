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
	"errors"
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
)

// DefaultCandidates is the number of nearest tiles a cell chooses from.
const DefaultCandidates = 5

// Mosaic is the result of Assemble.
type Mosaic struct {
	Grid       *TargetGrid
	Assignment *AssignmentMap
	Canvas     *image.RGBA
}

// Assembler creates a mosaic from a target image and a tile library.
// The zero value is valid, in this case the cell size is the tile size of the
// library and DefaultCandidates is used.
//
// Generation is deterministic: The same target, library and Seed always
// produce the same assignment and canvas, independent of NumRoutines.
type Assembler struct {
	// CellWidth and CellHeight are the size of a cell, they must be equal to
	// the size of the library tiles. Values ≤ 0 are replaced by the tile size.
	CellWidth, CellHeight int
	// Candidates is the number of nearest tiles each cell chooses from, ≤ 0
	// means DefaultCandidates. It's clamped to the library size.
	Candidates int
	// NumRoutines is the number of rows processed concurrently, ≤ 0 means
	// DefaultNumRoutines.
	NumRoutines int
	// Seed seeds the random choice among the candidates.
	Seed int64
	// Resizer is used to sample the target, nil means DefaultResizer.
	Resizer ImageResizer
	// Edge controls the size of the canvas.
	Edge EdgeMode
	// Index builds the color index, nil means KDTreeIndexBuilder.
	Index IndexBuilder
	// Selector picks a tile among the candidates, nil means
	// RandomCandidateSelector.
	Selector CandidateSelector
	// Progress is informed in the phases PhaseResolve and PhaseDraw, may be
	// nil.
	Progress ProgressFunc
}

// NewAssembler returns an assembler for cells of size x * y.
func NewAssembler(x, y int, seed int64) *Assembler {
	return &Assembler{
		CellWidth:  x,
		CellHeight: y,
		Candidates: DefaultCandidates,
		Seed:       seed,
	}
}

func (a *Assembler) cellSize(lib *TileLibrary) (int, int, error) {
	x, y := a.CellWidth, a.CellHeight
	if x <= 0 {
		x = lib.Width
	}
	if y <= 0 {
		y = lib.Height
	}
	if x != lib.Width || y != lib.Height {
		return 0, 0, fmt.Errorf("Cell size %dx%d doesn't match tile size %dx%d: %w",
			x, y, lib.Width, lib.Height, ErrInvalidCellSize)
	}
	if x <= 0 || y <= 0 {
		return 0, 0, ErrInvalidCellSize
	}
	return x, y, nil
}

// Assemble builds the color index, samples target, chooses a tile for each
// cell and pastes the tiles into a new canvas.
//
// An empty library returns ErrEmptyLibrary and a missing or empty target
// a *TargetImageError. If ctx is cancelled ctx.Err() is returned.
func (a *Assembler) Assemble(ctx context.Context, target image.Image, lib *TileLibrary) (*Mosaic, error) {
	if lib == nil || lib.Len() == 0 {
		return nil, ErrEmptyLibrary
	}
	if target == nil {
		return nil, &TargetImageError{Err: errors.New("No image given")}
	}
	x, y, sizeErr := a.cellSize(lib)
	if sizeErr != nil {
		return nil, sizeErr
	}
	buildIndex := a.Index
	if buildIndex == nil {
		buildIndex = KDTreeIndexBuilder
	}
	candidates := a.Candidates
	if candidates <= 0 {
		candidates = DefaultCandidates
	}

	index, indexErr := buildIndex(lib.AverageColors())
	if indexErr != nil {
		return nil, indexErr
	}

	grid, gridErr := SampleGrid(target, x, y, a.Resizer)
	if gridErr != nil {
		return nil, gridErr
	}
	bounds := target.Bounds()
	log.WithFields(log.Fields{
		"gridWidth":  grid.Width,
		"gridHeight": grid.Height,
		"candidates": IntMin(candidates, index.Len()),
		"edge":       a.Edge.String(),
	}).Debug("Target sampled")

	assignment, resolveErr := ResolveCells(ctx, index, grid, ResolveOptions{
		Candidates:  candidates,
		Seed:        a.Seed,
		Selector:    a.Selector,
		NumRoutines: a.NumRoutines,
		Progress:    a.Progress,
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	canvas := NewCanvas(a.Edge.CanvasBounds(bounds.Dx(), bounds.Dy(), grid.Width, grid.Height, x, y))
	if composeErr := ComposeMosaic(ctx, canvas, assignment, lib, a.NumRoutines, a.Progress); composeErr != nil {
		return nil, composeErr
	}
	return &Mosaic{Grid: grid, Assignment: assignment, Canvas: canvas}, nil
}
