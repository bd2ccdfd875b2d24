package squareroot

import "math"
import "testing"

func TestSamples(t *testing.T) {
	train, unseen, valid := Train(SmallSize), Unseen(SmallSize), Valid(SmallSize)
	if train.Len() != SmallSize || unseen.Len() != SmallSize-1 || valid.Len() != SmallSize-1 {
		t.Fatalf("sizes %d %d %d", train.Len(), unseen.Len(), valid.Len())
	}
	if train.Inputs(0)[0] != 0 || train.Inputs(SmallSize - 1)[0] != 1 {
		t.Errorf("training range %v..%v", train.Inputs(0), train.Inputs(SmallSize-1))
	}
	if x := unseen.Inputs(0)[0]; math.Abs(x-0.05) > 1e-12 || unseen.Targets(0)[0] != math.Sqrt(x) {
		t.Errorf("unseen example 0 = %+v", unseen.Example(0))
	}
	if train.Classification() {
		t.Errorf("square root is scored as classification")
	}
	if Medium().Len() != MediumSize || Big().Len() != BigSize || Small().Len() != SmallSize {
		t.Errorf("preset sizes wrong")
	}
}
