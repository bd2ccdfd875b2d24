package dense

import "gonum.org/v1/gonum/mat"

import "github.com/neurlang/mlp/layer"

// augment copies inputs behind the virtual bias input
func (d *Dense) augment(inputs []float64) (*mat.VecDense, error) {
	if err := layer.CheckLen("dense inputs", d.inputs, len(inputs)); err != nil {
		return nil, err
	}
	d.augmented[0] = 1
	copy(d.augmented[1:], inputs)
	return mat.NewVecDense(d.inputs+1, d.augmented), nil
}

// ComputeOutputs sets output i to activation(bias_i + sum_j w_ij * inputs_j).
func (d *Dense) ComputeOutputs(inputs []float64) error {
	x, err := d.augment(inputs)
	if err != nil {
		return err
	}
	out := mat.NewVecDense(d.outputs, d.out)
	out.MulVec(d.weights, x)
	for i, v := range d.out {
		d.out[i] = d.activation.apply(v)
	}
	return nil
}

// DepositOutputs stores the cached outputs into sink as the prediction for example n.
func (d *Dense) DepositOutputs(n int, sink layer.Sink) error {
	return sink.SetOutputs(n, d.out)
}
