package other

import "testing"

func TestSets(t *testing.T) {
	for name, d := range map[string]interface {
		Len() int
		NumInputs() int
		NumOutputs() int
		Classification() bool
	}{"train": Train(), "unseen": Unseen(), "valid": Valid()} {
		if d.Len() == 0 || d.NumInputs() != 2 || d.NumOutputs() != 2 || !d.Classification() {
			t.Errorf("%s: %d examples of %d -> %d", name, d.Len(), d.NumInputs(), d.NumOutputs())
		}
	}
}
