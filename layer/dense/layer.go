// Package dense implements a fully connected leaf layer with sigmoid or linear activation
package dense

import "gonum.org/v1/gonum/mat"
import "github.com/pkg/errors"

// Dense is a leaf layer: one row of weights per output unit, bias in column 0.
type Dense struct {
	inputs     int
	outputs    int
	activation Activation

	// weights is outputs x (inputs+1), column 0 holds the biases
	weights *mat.Dense
	// changes holds the previous weight change of every weight, for momentum
	changes *mat.Dense

	out    []float64
	deltas []float64

	// augmented is the input vector prefixed with the virtual bias input 1
	augmented []float64
}

// MustNew creates a new dense layer, panicking on invalid sizes
func MustNew(inputs, outputs int, activation Activation) *Dense {
	o, err := New(inputs, outputs, activation)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new dense layer with all weights zero
func New(inputs, outputs int, activation Activation) (o *Dense, err error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, errors.Errorf("dense layer needs positive sizes, got %d inputs and %d outputs", inputs, outputs)
	}
	if activation != Sigmoid && activation != Linear {
		return nil, errors.Errorf("unknown activation %d", activation)
	}
	o = new(Dense)
	o.inputs = inputs
	o.outputs = outputs
	o.activation = activation
	o.weights = mat.NewDense(outputs, inputs+1, nil)
	o.changes = mat.NewDense(outputs, inputs+1, nil)
	o.out = make([]float64, outputs)
	o.deltas = make([]float64, outputs)
	o.augmented = make([]float64, inputs+1)
	return
}

// NumInputs reports how many inputs the layer consumes.
func (d *Dense) NumInputs() int {
	return d.inputs
}

// NumOutputs reports how many units the layer has.
func (d *Dense) NumOutputs() int {
	return d.outputs
}

// Activation reports the activation of the layer.
func (d *Dense) Activation() Activation {
	return d.activation
}

// Outputs returns the outputs cached by the last forward pass.
func (d *Dense) Outputs() []float64 {
	return d.out
}

// Deltas returns the deltas cached by the last backward pass.
func (d *Dense) Deltas() []float64 {
	return d.deltas
}

// Weight returns the weight from input j to unit i. Input -1 is the bias.
func (d *Dense) Weight(i, j int) float64 {
	return d.weights.At(i, j+1)
}
