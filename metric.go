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
	"math"
)

// VectorMetric is a function that takes two vectors of the same length and
// returns a metric value ("distance") of the two.
type VectorMetric func(p, q []float64) float64

// EuclideanDistance returns the euclidean distance of two
// vectors, that is sqrt( (p1 - q1)² + ... + (pn - qn)² ).
//
// This is the only metric used to compare colors: Raw channel values, no
// weighting.
func EuclideanDistance(p, q []float64) float64 {
	return math.Sqrt(squaredEuclidean(p, q))
}

func squaredEuclidean(p, q []float64) float64 {
	var sum float64
	for i, e1 := range p {
		diff := e1 - q[i]
		sum += diff * diff
	}
	return sum
}

// colorDistance is EuclideanDistance on average colors without the slice
// conversion, it is called once per tile and per cell.
func colorDistance(a, b AverageColor) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
