package main

import "math"
import "testing"

import "github.com/neurlang/mlp/datasets/squareroot"
import "github.com/neurlang/mlp/layer/dense"
import "github.com/neurlang/mlp/net/feedforward"
import "github.com/neurlang/mlp/trainer"

func TestDebugSamples(t *testing.T) {
	dataset := squareroot.Medium()

	net := feedforward.MustNew(dense.Linear, 1, 4, 1)
	net.Randomize(1)
	t.Logf("Network has %d weights in %d layers", net.NumWeights(), net.LenLayers())

	tr, err := trainer.New(net, dataset, nil, nil, trainer.DefaultHyperParameters())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.RunEpochs(200, 0.1, 0.5); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 5; i++ {
		if err := net.ComputeOutputs(dataset.Inputs(i)); err != nil {
			t.Fatal(err)
		}
		predicted := net.Outputs()[0]
		expected := dataset.Targets(i)[0]
		t.Logf("Input: %.3f, Expected: %.3f, Predicted: %.3f", dataset.Inputs(i)[0], expected, predicted)
		if math.IsNaN(predicted) || math.Abs(predicted-expected) > 0.5 {
			t.Errorf("input %v: predicted %v, expected %v", dataset.Inputs(i), predicted, expected)
		}
	}
}
