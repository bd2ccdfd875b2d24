package dense

import "math/rand"

import "gonum.org/v1/gonum/mat"
import "github.com/pkg/errors"

import "github.com/neurlang/mlp/layer"

// NumWeights reports outputs * (inputs + 1).
func (d *Dense) NumWeights() int {
	return d.outputs * (d.inputs + 1)
}

// LoadWeights consumes NumWeights tokens, row by row with the bias first,
// and returns the remaining tokens. Previous weight changes are cleared.
func (d *Dense) LoadWeights(tokens []string) ([]string, error) {
	values, rest, err := layer.ParseWeights(tokens, d.NumWeights())
	if err != nil {
		return tokens, errors.Wrapf(err, "loading %dx%d %s layer", d.inputs, d.outputs, d.activation)
	}
	d.weights.Copy(mat.NewDense(d.outputs, d.inputs+1, values))
	d.changes.Zero()
	return rest, nil
}

// RandomizeWeights draws every weight uniformly from [-1, 1), row by row.
func (d *Dense) RandomizeWeights(rng *rand.Rand) {
	d.weights.Apply(func(i, j int, v float64) float64 {
		return 2*rng.Float64() - 1
	}, d.weights)
	d.changes.Zero()
}

// DumpWeights renders the weights in the order LoadWeights consumes them.
func (d *Dense) DumpWeights() string {
	var values = make([]float64, 0, d.NumWeights())
	for i := 0; i < d.outputs; i++ {
		values = append(values, mat.Row(nil, i, d.weights)...)
	}
	return layer.FormatWeights(values)
}
