// Package chain composes a head layer with a successor layer, so that chains of
// any depth present the same layer interface as a single leaf layer.
package chain

import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/mlp/layer"

// Chain is a head layer followed by the rest of the chain. The chain owns its successor.
type Chain struct {
	head layer.Layer
	next layer.Layer
}

// MustNew links head to next, panicking when their sizes disagree
func MustNew(head, next layer.Layer) *Chain {
	o, err := New(head, next)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New links head to next. The outputs of head must match the inputs of next.
func New(head, next layer.Layer) (*Chain, error) {
	if head == nil || next == nil {
		return nil, errors.New("chain needs a head and a successor")
	}
	if err := layer.CheckLen("chain link", head.NumOutputs(), next.NumInputs()); err != nil {
		return nil, err
	}
	return &Chain{head: head, next: next}, nil
}

// Head returns the first layer of the chain.
func (c *Chain) Head() layer.Layer {
	return c.head
}

// Next returns the successor of the head.
func (c *Chain) Next() layer.Layer {
	return c.next
}

// Depth counts the leaf layers in the chain.
func (c *Chain) Depth() int {
	return depth(c.head) + depth(c.next)
}

func depth(l layer.Layer) int {
	if c, ok := l.(*Chain); ok {
		return c.Depth()
	}
	return 1
}

func (c *Chain) NumInputs() int {
	return c.head.NumInputs()
}

// NumOutputs is the output count of the terminal layer.
func (c *Chain) NumOutputs() int {
	return c.next.NumOutputs()
}

// ComputeOutputs feeds inputs to the head and the head's outputs to the successor.
func (c *Chain) ComputeOutputs(inputs []float64) error {
	if err := c.head.ComputeOutputs(inputs); err != nil {
		return err
	}
	return c.next.ComputeOutputs(c.head.Outputs())
}

// Outputs returns the outputs of the terminal layer.
func (c *Chain) Outputs() []float64 {
	return c.next.Outputs()
}

// DepositOutputs is passed through to the terminal layer.
func (c *Chain) DepositOutputs(n int, sink layer.Sink) error {
	return c.next.DepositOutputs(n, sink)
}

// ComputeDeltas computes the successor's deltas from errors first, then the
// head's deltas from the successor's weighted deltas.
func (c *Chain) ComputeDeltas(errors []float64) error {
	if err := c.next.ComputeDeltas(errors); err != nil {
		return err
	}
	return c.head.ComputeDeltas(c.next.WeightedDeltas())
}

// WeightedDeltas returns the error signal for whatever feeds the head.
func (c *Chain) WeightedDeltas() []float64 {
	return c.head.WeightedDeltas()
}

// UpdateWeights updates the head using inputs, then the successor using the head's outputs.
func (c *Chain) UpdateWeights(inputs []float64, learnRate, momentum float64) error {
	if err := c.head.UpdateWeights(inputs, learnRate, momentum); err != nil {
		return err
	}
	return c.next.UpdateWeights(c.head.Outputs(), learnRate, momentum)
}

// LoadWeights lets the head consume its prefix and the successor the remainder.
// Nothing is loaded unless all NumWeights tokens are numbers.
func (c *Chain) LoadWeights(tokens []string) ([]string, error) {
	if _, _, err := layer.ParseWeights(tokens, c.NumWeights()); err != nil {
		return tokens, err
	}
	rest, err := c.head.LoadWeights(tokens)
	if err != nil {
		return tokens, err
	}
	return c.next.LoadWeights(rest)
}

// RandomizeWeights randomizes the head and then the successor from the same rng.
func (c *Chain) RandomizeWeights(rng *rand.Rand) {
	c.head.RandomizeWeights(rng)
	c.next.RandomizeWeights(rng)
}

func (c *Chain) NumWeights() int {
	return c.head.NumWeights() + c.next.NumWeights()
}

func (c *Chain) DumpWeights() string {
	return layer.JoinWeights(c.head.DumpWeights(), c.next.DumpWeights())
}
