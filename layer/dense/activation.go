package dense

import "math"

// Activation selects the function applied to the weighted sum of a unit.
type Activation byte

const (
	// Sigmoid is 1/(1+e^-x), used by hidden layers.
	Sigmoid Activation = iota
	// Linear passes the weighted sum through.
	Linear
)

func (a Activation) String() string {
	switch a {
	case Sigmoid:
		return "sigmoid"
	case Linear:
		return "linear"
	}
	return "unknown"
}

func (a Activation) apply(x float64) float64 {
	if a == Linear {
		return x
	}
	return 1 / (1 + math.Exp(-x))
}

// derivative is expressed in terms of the unit's output
func (a Activation) derivative(out float64) float64 {
	if a == Linear {
		return 1
	}
	return out * (1 - out)
}
