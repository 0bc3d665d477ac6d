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
	"image"
)

// AverageColor describes the average of several RGB colors. The components
// are R, G and B, each in the range [0, 255].
type AverageColor [3]float64

// NewAverageColor returns the average color vector of a single RGB color.
func NewAverageColor(c RGB) AverageColor {
	return AverageColor{float64(c.R), float64(c.G), float64(c.B)}
}

// ComputeAverageColor computes the average color of an image, that is the
// arithmetic mean of each channel over all pixels.
func ComputeAverageColor(img image.Image) AverageColor {
	bounds := img.Bounds()

	// don't do anything for empty images
	if bounds.Empty() {
		return AverageColor{}
	}
	var r, g, b float64
	numPixels := float64(bounds.Dx() * bounds.Dy())
	if rgba, ok := img.(*image.RGBA); ok {
		// fast path, avoids the color interface for each pixel
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			offset := rgba.PixOffset(bounds.Min.X, y)
			row := rgba.Pix[offset : offset+4*bounds.Dx()]
			for i := 0; i < len(row); i += 4 {
				r += float64(row[i])
				g += float64(row[i+1])
				b += float64(row[i+2])
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgb := ConvertRGB(img.At(x, y))
				r += float64(rgb.R)
				g += float64(rgb.G)
				b += float64(rgb.B)
			}
		}
	}
	return AverageColor{r / numPixels, g / numPixels, b / numPixels}
}

// Dist returns the distance between the two average color vectors given the
// metric for the component vectors.
func (c AverageColor) Dist(other AverageColor, metric VectorMetric) float64 {
	return metric(c[:], other[:])
}

// RGB rounds the average to the nearest RGB color.
func (c AverageColor) RGB() RGB {
	return RGB{R: roundComponent(c[0]), G: roundComponent(c[1]), B: roundComponent(c[2])}
}

func roundComponent(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
