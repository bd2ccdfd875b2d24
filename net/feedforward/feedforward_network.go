// Package feedforward builds multi layer perceptrons as chains of dense layers
package feedforward

import "fmt"
import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/mlp/layer"
import "github.com/neurlang/mlp/layer/chain"
import "github.com/neurlang/mlp/layer/dense"

// FeedforwardNetwork is a chain of dense layers. Every layer but the last uses
// sigmoid activation; the last one uses the activation given to New.
type FeedforwardNetwork struct {
	layer.Layer
	sizes []int
}

// MustNew creates a network, panicking on invalid sizes
func MustNew(output dense.Activation, sizes ...int) *FeedforwardNetwork {
	f, err := New(output, sizes...)
	if err != nil {
		panic(err.Error())
	}
	return f
}

// New creates a network with the given layer sizes, inputs first. A 2-2-1
// network has 2 inputs, a hidden layer of 2 units and 1 output unit.
func New(output dense.Activation, sizes ...int) (*FeedforwardNetwork, error) {
	if len(sizes) < 2 {
		return nil, errors.Errorf("network needs at least 2 sizes, got %d", len(sizes))
	}
	last := len(sizes) - 1
	out, err := dense.New(sizes[last-1], sizes[last], output)
	if err != nil {
		return nil, errors.Wrapf(err, "layer %d", last)
	}
	var l layer.Layer = out
	for i := last - 2; i >= 0; i-- {
		head, err := dense.New(sizes[i], sizes[i+1], dense.Sigmoid)
		if err != nil {
			return nil, errors.Wrapf(err, "layer %d", i+1)
		}
		if l, err = chain.New(head, l); err != nil {
			return nil, err
		}
	}
	return &FeedforwardNetwork{Layer: l, sizes: append([]int(nil), sizes...)}, nil
}

// Sizes returns the layer sizes the network was created with.
func (f *FeedforwardNetwork) Sizes() []int {
	return f.sizes
}

// LenLayers returns the number of dense layers.
func (f *FeedforwardNetwork) LenLayers() int {
	return len(f.sizes) - 1
}

// SetWeights loads the whole network from a weight string. The string must hold
// exactly NumWeights values. On error the weights are left unchanged.
func (f *FeedforwardNetwork) SetWeights(weights string) error {
	tokens := layer.Tokenize(weights)
	n := f.NumWeights()
	if len(tokens) > n {
		return errors.WithStack(layer.FormatError{
			Reason: fmt.Sprintf("%d values left over after %d weights", len(tokens)-n, n),
		})
	}
	// every token must parse before the first layer is overwritten
	if _, _, err := layer.ParseWeights(tokens, n); err != nil {
		return err
	}
	_, err := f.LoadWeights(tokens)
	return err
}

// Randomize sets all weights from a generator seeded with seed.
func (f *FeedforwardNetwork) Randomize(seed int64) {
	f.RandomizeWeights(rand.New(rand.NewSource(seed)))
}
