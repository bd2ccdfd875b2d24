// Package datasets implements the labelled data sets a network is trained and tested on
package datasets

import "math"
import "os"
import "strconv"
import "strings"

import "gonum.org/v1/gonum/floats"
import "github.com/pkg/errors"

import "github.com/neurlang/mlp/layer"

// Example is one row of a data set. Outputs holds the last prediction deposited for it.
type Example struct {
	Inputs  []float64
	Targets []float64
	Outputs []float64
}

// Dataset is an ordered set of examples with the display formats of its columns
// and a log of the SSE recorded once per epoch.
type Dataset struct {
	inputs  int
	outputs int

	inFormat     string
	targetFormat string
	outFormat    string

	names    []string
	examples []Example

	sseLog []float64
}

// MustParse parses a data set, panicking on error
func MustParse(text string) *Dataset {
	d, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// New creates a data set from rows holding the inputs followed by the targets,
// shown with the given display formats.
func New(inputs, outputs int, rows [][]float64, inFormat, targetFormat, outFormat string) (*Dataset, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, formatError(0, "bad sizes %d and %d", inputs, outputs)
	}
	for _, f := range []string{inFormat, targetFormat, outFormat} {
		if !validFormat(f) {
			return nil, formatError(0, "bad display format %q", f)
		}
	}
	d := &Dataset{
		inputs:       inputs,
		outputs:      outputs,
		inFormat:     inFormat,
		targetFormat: targetFormat,
		outFormat:    outFormat,
	}
	for n, row := range rows {
		if len(row) != inputs+outputs {
			return nil, formatError(n+1, "has %d fields, want %d", len(row), inputs+outputs)
		}
		values := append([]float64(nil), row...)
		d.examples = append(d.examples, Example{
			Inputs:  values[:inputs:inputs],
			Targets: values[inputs:],
			Outputs: make([]float64, outputs),
		})
	}
	if len(d.examples) == 0 {
		return nil, formatError(len(rows), "no examples")
	}
	return d, nil
}

// Load reads and parses a data set file.
func Load(name string) (*Dataset, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "loading data set")
	}
	d, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", name)
	}
	return d, nil
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return len(d.examples)
}

// NumInputs returns the number of input columns.
func (d *Dataset) NumInputs() int {
	return d.inputs
}

// NumOutputs returns the number of target columns.
func (d *Dataset) NumOutputs() int {
	return d.outputs
}

// Names returns the column names, or nil if the data set has none.
func (d *Dataset) Names() []string {
	return d.names
}

// Example returns the n-th example.
func (d *Dataset) Example(n int) Example {
	return d.examples[n]
}

// Inputs returns the inputs of example n.
func (d *Dataset) Inputs(n int) []float64 {
	return d.examples[n].Inputs
}

// Targets returns the targets of example n.
func (d *Dataset) Targets(n int) []float64 {
	return d.examples[n].Targets
}

// Outputs returns the last outputs deposited for example n.
func (d *Dataset) Outputs(n int) []float64 {
	return d.examples[n].Outputs
}

// SetOutputs records the outputs computed for example n.
func (d *Dataset) SetOutputs(n int, outputs []float64) error {
	if n < 0 || n >= len(d.examples) {
		return errors.Errorf("example %d out of range [0, %d)", n, len(d.examples))
	}
	if err := layer.CheckLen("data set outputs", d.outputs, len(outputs)); err != nil {
		return err
	}
	copy(d.examples[n].Outputs, outputs)
	return nil
}

// Errors returns target minus output for example n.
func (d *Dataset) Errors(n int) []float64 {
	var ret = make([]float64, d.outputs)
	floats.SubTo(ret, d.examples[n].Targets, d.examples[n].Outputs)
	return ret
}

// SSE returns, per output column, the squared error summed over the examples
// and divided by the number of examples.
func (d *Dataset) SSE() []float64 {
	var sse = make([]float64, d.outputs)
	if len(d.examples) == 0 {
		return sse
	}
	for n := range d.examples {
		e := d.Errors(n)
		floats.Mul(e, e)
		floats.Add(sse, e)
	}
	floats.Scale(1/float64(len(d.examples)), sse)
	return sse
}

// TotalSSE sums SSE over the output columns.
func (d *Dataset) TotalSSE() float64 {
	return floats.Sum(d.SSE())
}

// AddToSSELog appends the current TotalSSE to the log.
func (d *Dataset) AddToSSELog() {
	d.sseLog = append(d.sseLog, d.TotalSSE())
}

// SizeSSELog returns the number of entries in the SSE log.
func (d *Dataset) SizeSSELog() int {
	return len(d.sseLog)
}

// SSELog returns the i-th entry of the SSE log.
func (d *Dataset) SSELog(i int) float64 {
	return d.sseLog[i]
}

// Classification reports whether the targets are shown without decimals, in
// which case outputs are rounded and scored as classes.
func (d *Dataset) Classification() bool {
	return !strings.ContainsAny(format(d.targetFormat, 0.5), ".eE")
}

// PercentCorrect returns the percentage of examples whose rounded outputs
// all equal their targets.
func (d *Dataset) PercentCorrect() float64 {
	if len(d.examples) == 0 {
		return 0
	}
	var correct int
	for _, ex := range d.examples {
		ok := true
		for i := range ex.Targets {
			if math.Round(ex.Outputs[i]) != math.Round(ex.Targets[i]) {
				ok = false
				break
			}
		}
		if ok {
			correct++
		}
	}
	return 100 * float64(correct) / float64(len(d.examples))
}

// Analysis describes the current performance on the data set: the mean SSE per
// output and, for classification sets, the percentage classified correctly.
func (d *Dataset) Analysis() string {
	var b strings.Builder
	sse := d.SSE()
	if len(sse) == 1 {
		b.WriteString("Mean SSE ")
	} else {
		b.WriteString("Mean SSEs ")
	}
	for i, v := range sse {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', 4, 64))
	}
	if d.Classification() {
		b.WriteString(" % Correct ")
		b.WriteString(strconv.FormatFloat(d.PercentCorrect(), 'f', 2, 64))
	}
	return b.String()
}
