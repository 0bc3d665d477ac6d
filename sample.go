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
	"image"
)

// TargetGrid contains one representative color for each cell of the mosaic.
// Colors are stored row by row, that is the color of column i in row j is
// Colors[j*Width + i].
type TargetGrid struct {
	Width, Height int
	Colors        []AverageColor
}

// NewTargetGrid returns a grid with all colors set to black.
func NewTargetGrid(width, height int) *TargetGrid {
	return &TargetGrid{
		Width:  width,
		Height: height,
		Colors: make([]AverageColor, width*height),
	}
}

// At returns the color of the cell in column i and row j.
func (grid *TargetGrid) At(i, j int) AverageColor {
	return grid.Colors[j*grid.Width+i]
}

// Len returns the number of cells.
func (grid *TargetGrid) Len() int {
	return len(grid.Colors)
}

// GridSize returns the number of cells that cover an image of size
// width x height with cells of size x * y. The result is round(width / x) and
// round(height / y), rounding half to even. So the grid might be a bit smaller
// or bigger than the image. Each dimension is at least 1.
func GridSize(width, height, x, y int) (int, int) {
	gw := IntMax(roundDiv(width, x), 1)
	gh := IntMax(roundDiv(height, y), 1)
	return gw, gh
}

// SampleGrid computes the representative color of each cell.
// It scales img down to the grid size, the pixel (i, j) of the scaled image
// is the color of cell (i, j).
//
// img is not modified. If resizer is nil DefaultResizer is used.
func SampleGrid(img image.Image, x, y int, resizer ImageResizer) (*TargetGrid, error) {
	if x <= 0 || y <= 0 {
		return nil, ErrInvalidCellSize
	}
	if img == nil {
		return nil, &TargetImageError{Err: errors.New("No image given")}
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &TargetImageError{Err: errors.New("Image is empty")}
	}
	gw, gh := GridSize(bounds.Dx(), bounds.Dy(), x, y)
	scaled := ResizeRGBA(resizer, gw, gh, img)
	grid := NewTargetGrid(gw, gh)
	for j := 0; j < gh; j++ {
		for i := 0; i < gw; i++ {
			offset := scaled.PixOffset(i, j)
			pix := scaled.Pix[offset : offset+3]
			grid.Colors[j*gw+i] = AverageColor{float64(pix[0]), float64(pix[1]), float64(pix[2])}
		}
	}
	return grid, nil
}
