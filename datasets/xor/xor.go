package xor

import "github.com/neurlang/mlp/datasets"

// Spec is the data set text of the four XOR patterns.
const Spec = "2 1 %.0f %.0f %.3f;x1 x2 XOR;0 0 0;0 1 1;1 0 1;1 1 0"

// Weights are the initial weights of a 2-2-1 network used by the demo.
const Weights = "0.862518 -0.155797 0.282885 0.834986 -0.505997 -0.864449 0.036498 -0.430437 0.481210"

// Dataset returns a fresh copy of the XOR data set.
func Dataset() *datasets.Dataset {
	return datasets.MustParse(Spec)
}
