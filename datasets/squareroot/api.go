package squareroot

import "math"

import "github.com/neurlang/mlp/datasets"

const SmallSize = 11
const MediumSize = 41
const BigSize = 161

// samples returns n points of sqrt on [0, 1], the first one at offset times the spacing
func samples(n int, offset float64) *datasets.Dataset {
	var rows = make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		x := (float64(i) + offset) / float64(n-1)
		if x > 1 {
			break
		}
		rows = append(rows, []float64{x, math.Sqrt(x)})
	}
	d, err := datasets.New(1, 1, rows, "%.3f", "%.3f", "%.3f")
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Train returns n evenly spaced training points including 0 and 1.
func Train(n int) *datasets.Dataset {
	return samples(n, 0)
}

// Unseen returns the points half way between the training points.
func Unseen(n int) *datasets.Dataset {
	return samples(n, 0.5)
}

// Valid returns the points a quarter of the way between the training points.
func Valid(n int) *datasets.Dataset {
	return samples(n, 0.25)
}

func Small() *datasets.Dataset {
	return Train(SmallSize)
}

func Medium() *datasets.Dataset {
	return Train(MediumSize)
}

func Big() *datasets.Dataset {
	return Train(BigSize)
}
