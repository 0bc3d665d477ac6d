package mosaic

import "math"

func IntMin(a int, elements ...int) int {
	res := a
	for _, val := range elements {
		if val < res {
			res = val
		}
	}
	return res
}

func IntMax(a int, elements ...int) int {
	res := a
	for _, val := range elements {
		if val > res {
			res = val
		}
	}
	return res
}

// roundDiv returns round(a / b) with ties to even, b must be > 0.
func roundDiv(a, b int) int {
	return int(math.RoundToEven(float64(a) / float64(b)))
}

// splitMix64 is the finalizer of the splitmix64 generator, it's used to derive
// independent seeds from a base seed and an index.
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
