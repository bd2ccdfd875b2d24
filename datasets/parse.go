package datasets

import "fmt"
import "strconv"
import "strings"

import "github.com/pkg/errors"

const (
	defaultInFormat     = "%.2f"
	defaultTargetFormat = "%.2f"
	defaultOutFormat    = "%.3f"
)

// FormatError reports malformed data set text.
type FormatError struct {
	Record int
	Reason string
}

func (err FormatError) Error() string {
	return "data set record " + strconv.Itoa(err.Record) + ": " + err.Reason
}

// IsFormat reports whether err was caused by a FormatError.
func IsFormat(err error) bool {
	var target FormatError
	return errors.As(err, &target)
}

func formatError(record int, reason string, args ...interface{}) error {
	return errors.WithStack(FormatError{Record: record, Reason: fmt.Sprintf(reason, args...)})
}

func format(f string, v float64) string {
	return fmt.Sprintf(f, v)
}

func validFormat(f string) bool {
	return strings.Count(f, "%") == 1 && !strings.Contains(format(f, 1), "%!")
}

// Parse reads a data set from text. Records are separated by ';' or new lines.
// The first record is the header "inputs outputs [inFormat [targetFormat [outFormat]]]",
// an optional record of column names may follow, and every further record holds
// the input values followed by the target values.
func Parse(text string) (*Dataset, error) {
	records := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	})
	var fields [][]string
	for _, r := range records {
		if f := strings.Fields(r); len(f) > 0 {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil, formatError(0, "empty data set")
	}

	d := &Dataset{
		inFormat:     defaultInFormat,
		targetFormat: defaultTargetFormat,
		outFormat:    defaultOutFormat,
	}
	header := fields[0]
	if len(header) < 2 || len(header) > 5 {
		return nil, formatError(0, "header needs 2 to 5 fields, has %d", len(header))
	}
	var err error
	if d.inputs, err = strconv.Atoi(header[0]); err != nil || d.inputs <= 0 {
		return nil, formatError(0, "bad input count %q", header[0])
	}
	if d.outputs, err = strconv.Atoi(header[1]); err != nil || d.outputs <= 0 {
		return nil, formatError(0, "bad output count %q", header[1])
	}
	for i, f := range []*string{&d.inFormat, &d.targetFormat, &d.outFormat} {
		if len(header) > i+2 {
			if !validFormat(header[i+2]) {
				return nil, formatError(0, "bad display format %q", header[i+2])
			}
			*f = header[i+2]
		}
	}

	width := d.inputs + d.outputs
	for n, row := range fields[1:] {
		record := n + 1
		if len(row) != width {
			return nil, formatError(record, "has %d fields, want %d", len(row), width)
		}
		values, numbers := parseRow(row)
		if numbers != len(row) {
			// only a row without any numbers names the columns
			if record == 1 && numbers == 0 {
				d.names = row
				continue
			}
			return nil, formatError(record, "is not numeric")
		}
		d.examples = append(d.examples, Example{
			Inputs:  values[:d.inputs:d.inputs],
			Targets: values[d.inputs:],
			Outputs: make([]float64, d.outputs),
		})
	}
	if len(d.examples) == 0 {
		return nil, formatError(len(fields), "no examples")
	}
	return d, nil
}

// parseRow parses row and counts the fields which are numbers.
func parseRow(row []string) (values []float64, numbers int) {
	values = make([]float64, len(row))
	for i, s := range row {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		values[i] = v
		numbers++
	}
	return values, numbers
}
