package feedforward

import "bytes"
import "path/filepath"
import "testing"

import "github.com/neurlang/mlp/layer"
import "github.com/neurlang/mlp/layer/dense"

func TestNew(t *testing.T) {
	for _, sizes := range [][]int{{2, 1}, {2, 2, 1}, {3, 5, 4, 2}, {1, 1, 1, 1, 1}} {
		f := MustNew(dense.Linear, sizes...)
		var want int
		for i := 0; i+1 < len(sizes); i++ {
			want += sizes[i+1] * (sizes[i] + 1)
		}
		if f.NumWeights() != want {
			t.Errorf("%v: NumWeights = %d, want %d", sizes, f.NumWeights(), want)
		}
		if f.NumInputs() != sizes[0] || f.NumOutputs() != sizes[len(sizes)-1] {
			t.Errorf("%v: shape %d -> %d", sizes, f.NumInputs(), f.NumOutputs())
		}
		if f.LenLayers() != len(sizes)-1 {
			t.Errorf("%v: %d layers", sizes, f.LenLayers())
		}
	}
	if _, err := New(dense.Sigmoid, 2); err == nil {
		t.Errorf("single size accepted")
	}
	if _, err := New(dense.Sigmoid, 2, 0, 1); err == nil {
		t.Errorf("zero size accepted")
	}
}

func TestSetWeights(t *testing.T) {
	f := MustNew(dense.Sigmoid, 2, 2, 1)
	const w = "1 2 3 4 5 6 7 8 9"
	if err := f.SetWeights(w); err != nil {
		t.Fatal(err)
	}
	if f.DumpWeights() != w {
		t.Errorf("dump = %q", f.DumpWeights())
	}
	if err := f.SetWeights(w + " 10"); !layer.IsFormat(err) {
		t.Errorf("extra value: error = %v, want format error", err)
	}
	if err := f.SetWeights("1 2 3"); !layer.IsFormat(err) {
		t.Errorf("missing values: error = %v, want format error", err)
	}
}

func TestSetWeightsFailureKeepsWeights(t *testing.T) {
	f := MustNew(dense.Sigmoid, 2, 2, 1)
	const w = "1 2 3 4 5 6 7 8 9"
	if err := f.SetWeights(w); err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{
		"9 8 7 6 5 4 3 2 1 0",
		"9 8 7 6 5 4",
		"9 8 7 6 5 4 3 2 x",
	} {
		if err := f.SetWeights(bad); !layer.IsFormat(err) {
			t.Errorf("SetWeights(%q) error = %v, want format error", bad, err)
		}
		if f.DumpWeights() != w {
			t.Errorf("SetWeights(%q) changed weights to %q", bad, f.DumpWeights())
		}
	}
}

func TestWeightFiles(t *testing.T) {
	a := MustNew(dense.Linear, 3, 4, 2)
	a.Randomize(11)
	dir := t.TempDir()

	plain := filepath.Join(dir, "weights.txt")
	if err := a.WriteWeightsToFile(plain); err != nil {
		t.Fatal(err)
	}
	b := MustNew(dense.Linear, 3, 4, 2)
	if err := b.ReadWeightsFromFile(plain); err != nil {
		t.Fatal(err)
	}
	if a.DumpWeights() != b.DumpWeights() {
		t.Errorf("plain file round trip changed weights")
	}

	packed := filepath.Join(dir, "weights.lzw")
	if err := a.WriteCompressedWeightsToFile(packed); err != nil {
		t.Fatal(err)
	}
	c := MustNew(dense.Linear, 3, 4, 2)
	if err := c.ReadCompressedWeightsFromFile(packed); err != nil {
		t.Fatal(err)
	}
	if a.DumpWeights() != c.DumpWeights() {
		t.Errorf("compressed file round trip changed weights")
	}

	d := MustNew(dense.Linear, 3, 5, 2)
	if err := d.ReadWeightsFromFile(plain); !layer.IsFormat(err) {
		t.Errorf("reading into a bigger network: error = %v, want format error", err)
	}
}

func TestCompressedWeightsBuffer(t *testing.T) {
	a := MustNew(dense.Sigmoid, 2, 2, 1)
	a.Randomize(1)
	var buf bytes.Buffer
	if err := a.WriteCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	b := MustNew(dense.Sigmoid, 2, 2, 1)
	if err := b.ReadCompressedWeights(&buf); err != nil {
		t.Fatal(err)
	}
	if a.DumpWeights() != b.DumpWeights() {
		t.Errorf("round trip changed weights")
	}
}

func FuzzNetworkWeights(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(-99))
	f.Fuzz(func(t *testing.T, seed int64) {
		a := MustNew(dense.Sigmoid, 2, 3, 2)
		a.Randomize(seed)
		b := MustNew(dense.Sigmoid, 2, 3, 2)
		if err := b.SetWeights(a.DumpWeights()); err != nil {
			t.Fatal(err)
		}
		if a.DumpWeights() != b.DumpWeights() {
			t.Fatalf("round trip changed weights")
		}
	})
}
