package trainer

import "fmt"
import "math"
import "strings"

import "github.com/google/uuid"
import "github.com/pkg/errors"

import "github.com/neurlang/mlp/datasets"
import "github.com/neurlang/mlp/layer"

// State is the state of a Trainer. Stopped is terminal.
type State byte

const (
	Learning State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "learning"
}

// Trainer trains a network on a training set. The unseen set is only reported
// on. The validation set, when present, decides when learning stops.
type Trainer struct {
	net    layer.Layer
	train  *datasets.Dataset
	unseen *datasets.Dataset
	valid  *datasets.Dataset

	h  HyperParameters
	id uuid.UUID

	state          State
	previousSSESum float64
}

// New creates a trainer and initializes it. unseen and valid may be nil; without
// a validation set learning never stops early.
func New(net layer.Layer, train, unseen, valid *datasets.Dataset, h HyperParameters) (*Trainer, error) {
	if net == nil || train == nil {
		return nil, errors.New("trainer needs a network and a training set")
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	for _, d := range []struct {
		name string
		set  *datasets.Dataset
	}{{"training", train}, {"unseen", unseen}, {"validation", valid}} {
		if d.set == nil {
			continue
		}
		if err := layer.CheckLen(d.name+" set inputs", net.NumInputs(), d.set.NumInputs()); err != nil {
			return nil, err
		}
		if err := layer.CheckLen(d.name+" set outputs", net.NumOutputs(), d.set.NumOutputs()); err != nil {
			return nil, err
		}
	}
	t := &Trainer{
		net:    net,
		train:  train,
		unseen: unseen,
		valid:  valid,
		h:      h,
		id:     uuid.New(),
	}
	t.Initialize()
	t.h.printf("run %s: %d weights, %d training examples, validation %v", t.id, net.NumWeights(), train.Len(), t.HasValidation())
	return t, nil
}

// Initialize forgets the previous validation window and resumes learning.
func (t *Trainer) Initialize() {
	t.previousSSESum = math.Inf(1)
	t.state = Learning
}

// State reports whether the trainer is still learning.
func (t *Trainer) State() State {
	return t.state
}

// RunID identifies the trainer in logs.
func (t *Trainer) RunID() uuid.UUID {
	return t.id
}

// HasValidation reports whether early stopping is enabled.
func (t *Trainer) HasValidation() bool {
	return t.valid != nil
}

// Epochs returns the number of epochs trained so far.
func (t *Trainer) Epochs() int {
	return t.train.SizeSSELog()
}

// Network returns the network being trained.
func (t *Trainer) Network() layer.Layer {
	return t.net
}

// Learn runs the number of epochs given in the hyperparameters.
func (t *Trainer) Learn() (string, error) {
	return t.RunEpochs(t.h.Epochs, t.h.LearnRate, t.h.Momentum)
}

// RunEpochs trains for numEpochs epochs and returns a progress report with the
// training set analysis at evenly spaced epochs. With a validation set, the
// validation SSE of every CheckEvery epochs is summed; once a sum is not lower
// than the previous one the trainer stops and the report ends with the number
// of epochs reached. A stopped trainer returns an empty report.
func (t *Trainer) RunEpochs(numEpochs int, learnRate, momentum float64) (string, error) {
	if t.state == Stopped {
		return "", nil
	}
	var s strings.Builder
	var epochsSoFar = t.train.SizeSSELog()
	var every = reportEvery(numEpochs, t.h.ReportLines)

	var windowSum float64
	var read int
	if t.valid != nil {
		read = t.valid.SizeSSELog()
	}

	for ct := 1; ct <= numEpochs; ct++ {
		if err := t.adapt(learnRate, momentum); err != nil {
			return s.String(), errors.Wrapf(err, "epoch %d", ct+epochsSoFar)
		}
		t.train.AddToSSELog()

		if t.valid != nil {
			if err := t.compute(t.valid); err != nil {
				return s.String(), errors.Wrapf(err, "epoch %d", ct+epochsSoFar)
			}
			t.valid.AddToSSELog()
			for ; read < t.valid.SizeSSELog(); read++ {
				windowSum += t.valid.SSELog(read)
			}
			if ct%t.h.CheckEvery == 0 {
				if windowSum >= t.previousSSESum {
					t.state = Stopped
					t.h.printf("run %s: stopped after %d epochs, validation window %g >= %g",
						t.id, t.train.SizeSSELog(), windowSum, t.previousSSESum)
					s.WriteString(fmt.Sprintf("Stopped after %d epochs.\n", t.train.SizeSSELog()))
					return s.String(), nil
				}
				t.previousSSESum = windowSum
				windowSum = 0
			}
		}

		if ct%every == 0 {
			line := fmt.Sprintf("Epoch %d : %s", ct+epochsSoFar, t.train.Analysis())
			t.h.printf("run %s: %s", t.id, line)
			s.WriteString(line)
			s.WriteByte('\n')
		}
	}
	return s.String(), nil
}

// reportEvery reports every epoch of a short run and lines evenly spaced lines otherwise.
func reportEvery(numEpochs, lines int) int {
	if numEpochs < 2*lines {
		return 1
	}
	return numEpochs / lines
}

// Present passes every data set through the network without learning and
// describes the performance on each.
func (t *Trainer) Present() (string, error) {
	var s strings.Builder
	for _, d := range []struct {
		name string
		set  *datasets.Dataset
	}{{"Train", t.train}, {"Unseen", t.unseen}, {"Valid", t.valid}} {
		if d.set == nil {
			continue
		}
		if err := t.compute(d.set); err != nil {
			return s.String(), errors.Wrapf(err, "presenting %s set", d.name)
		}
		if s.Len() != 0 {
			s.WriteByte(' ')
		}
		s.WriteString(d.name)
		s.WriteString(": ")
		s.WriteString(d.set.Analysis())
	}
	return s.String(), nil
}

// compute passes the data set through the network and records the outputs.
func (t *Trainer) compute(d *datasets.Dataset) error {
	for n := 0; n < d.Len(); n++ {
		if err := t.net.ComputeOutputs(d.Inputs(n)); err != nil {
			return err
		}
		if err := t.net.DepositOutputs(n, d); err != nil {
			return err
		}
	}
	return nil
}

// adapt runs one epoch of online learning over the training set, in order.
func (t *Trainer) adapt(learnRate, momentum float64) error {
	for n := 0; n < t.train.Len(); n++ {
		inputs := t.train.Inputs(n)
		if err := t.net.ComputeOutputs(inputs); err != nil {
			return err
		}
		if err := t.net.DepositOutputs(n, t.train); err != nil {
			return err
		}
		if err := t.net.ComputeDeltas(t.train.Errors(n)); err != nil {
			return err
		}
		if err := t.net.UpdateWeights(inputs, learnRate, momentum); err != nil {
			return err
		}
	}
	return nil
}
