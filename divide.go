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
	"fmt"
	"image"
	"strings"
)

// EdgeMode describes what happens at the right and bottom border of the
// mosaic.
// The number of cells is computed by rounding (see GridSize), so the cells
// usually don't cover the target exactly. As an example consider an image
// with width 100 and cells of width 15. This gives round(6.67) = 7 cells,
// covering 105 pixels. With width 95 we get round(6.33) = 6 cells, covering
// only 90 pixels.
//
// EdgeClip keeps the size of the target image: tiles that reach beyond the
// border are clipped, a strip that is not covered by any cell stays black.
// EdgeFit sizes the mosaic to exactly the area covered by the cells, that is
// gridWidth * x times gridHeight * y.
type EdgeMode int

const (
	// EdgeClip is the mode in which the mosaic has the size of the target.
	EdgeClip EdgeMode = iota
	// EdgeFit is the mode in which the mosaic has the size of the grid.
	EdgeFit
)

func (mode EdgeMode) String() string {
	switch mode {
	case EdgeClip:
		return "clip"
	case EdgeFit:
		return "fit"
	default:
		return fmt.Sprintf("EdgeMode(%d)", mode)
	}
}

// ParseEdgeMode parses "clip" or "fit" (case insensitive), the empty string
// is EdgeClip.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clip":
		return EdgeClip, nil
	case "fit":
		return EdgeFit, nil
	default:
		return EdgeClip, fmt.Errorf("Unknown edge mode \"%s\", expected clip or fit", s)
	}
}

// CanvasBounds returns the bounds of the mosaic for a target of size
// width x height, a grid of gw x gh cells of size x * y.
func (mode EdgeMode) CanvasBounds(width, height, gw, gh, x, y int) image.Rectangle {
	switch mode {
	case EdgeFit:
		return image.Rect(0, 0, gw*x, gh*y)
	default:
		return image.Rect(0, 0, width, height)
	}
}

// CellRect returns the area of the cell in column i and row j, it starts at
// (i * x, j * y). The area is not intersected with the canvas.
func CellRect(i, j, x, y int) image.Rectangle {
	x0, y0 := i*x, j*y
	return image.Rect(x0, y0, x0+x, y0+y)
}
