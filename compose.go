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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NewCanvas returns an opaque black image with the given bounds.
func NewCanvas(bounds image.Rectangle) *image.RGBA {
	res := image.NewRGBA(bounds)
	draw.Draw(res, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)
	return res
}

// insertTile copies the tile into the area of the cell (i, j). Parts outside
// of the canvas are clipped.
func insertTile(into *image.RGBA, tile *Tile, i, j, x, y int) {
	area := CellRect(i, j, x, y)
	draw.Draw(into, area, tile.Image, tile.Image.Bounds().Min, draw.Src)
}

// ComposeMosaic pastes the tile assigned to each cell into canvas. The tile of
// cell (i, j) starts at (i * lib.Width, j * lib.Height).
//
// Rows are drawn concurrently; cells don't overlap, so no locking is
// required. Progress is reported in PhaseDraw once per cell.
func ComposeMosaic(ctx context.Context, canvas *image.RGBA, assignment *AssignmentMap,
	lib *TileLibrary, numRoutines int, progress ProgressFunc) error {
	n := lib.Len()
	counter := newProgressCounter(PhaseDraw, assignment.Width*assignment.Height, progress)
	return runJobs(ctx, assignment.Height, numRoutines, func(j int) error {
		for i := 0; i < assignment.Width; i++ {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			id := int(assignment.At(i, j))
			if id >= n {
				return fmt.Errorf("Cell (%d, %d) is assigned to tile %d, library has %d tiles",
					i, j, id, n)
			}
			insertTile(canvas, lib.Tile(id), i, j, lib.Width, lib.Height)
		}
		return nil
	}, func(j int) int { return assignment.Width }, counter)
}
