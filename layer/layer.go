package layer

import "math/rand"

// Layer is a processing stage with a weight matrix. A layer is either a leaf
// (see package dense) or a chain of a head layer and its successor (see package chain).
type Layer interface {

	// NumInputs reports how many inputs the layer consumes.
	NumInputs() int

	// NumOutputs reports how many outputs the final stage of the layer produces.
	NumOutputs() int

	// ComputeOutputs runs the forward pass and caches the outputs.
	ComputeOutputs(inputs []float64) error

	// Outputs returns the cached outputs of the last forward pass.
	Outputs() []float64

	// DepositOutputs writes the cached outputs into sink as the prediction for example n.
	DepositOutputs(n int, sink Sink) error

	// ComputeDeltas computes the deltas from the error signal at the output end.
	ComputeDeltas(errors []float64) error

	// WeightedDeltas returns the error signal to propagate to the previous layer.
	// Its length is always NumInputs.
	WeightedDeltas() []float64

	// UpdateWeights adjusts the weights using the cached deltas, with momentum.
	UpdateWeights(inputs []float64, learnRate, momentum float64) error

	// LoadWeights consumes NumWeights tokens and returns the remaining ones.
	LoadWeights(tokens []string) (rest []string, err error)

	// RandomizeWeights sets every weight from rng.
	RandomizeWeights(rng *rand.Rand)

	// NumWeights reports the number of weights, biases included.
	NumWeights() int

	// DumpWeights renders the weights in the order LoadWeights consumes them.
	DumpWeights() string
}

// Sink receives the outputs computed for an example.
type Sink interface {
	SetOutputs(n int, outputs []float64) error
}
