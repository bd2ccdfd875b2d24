package dense

import "gonum.org/v1/gonum/mat"

import "github.com/neurlang/mlp/layer"

// ComputeDeltas sets delta_i to errors_i times the activation derivative at output i.
func (d *Dense) ComputeDeltas(errors []float64) error {
	if err := layer.CheckLen("dense errors", d.outputs, len(errors)); err != nil {
		return err
	}
	for i, e := range errors {
		d.deltas[i] = e * d.activation.derivative(d.out[i])
	}
	return nil
}

// WeightedDeltas returns sum_i delta_i * w_ij for every input j.
func (d *Dense) WeightedDeltas() []float64 {
	var ret = make([]float64, d.inputs)
	w := d.weights.Slice(0, d.outputs, 1, d.inputs+1)
	out := mat.NewVecDense(d.inputs, ret)
	out.MulVec(w.T(), mat.NewVecDense(d.outputs, d.deltas))
	return ret
}

// UpdateWeights applies change_ij = learnRate * delta_i * input_j + momentum * change_ij
// to every weight, with the bias seeing input 1.
func (d *Dense) UpdateWeights(inputs []float64, learnRate, momentum float64) error {
	x, err := d.augment(inputs)
	if err != nil {
		return err
	}
	d.changes.Scale(momentum, d.changes)
	d.changes.RankOne(d.changes, learnRate, mat.NewVecDense(d.outputs, d.deltas), x)
	d.weights.Add(d.weights, d.changes)
	return nil
}
