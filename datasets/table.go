package datasets

import "strings"

// Table renders every example with the display formats of the data set:
// inputs, then targets, then the last outputs.
func (d *Dataset) Table() string {
	var b strings.Builder
	if d.names != nil {
		b.WriteString(strings.Join(d.names[:d.inputs], " "))
		b.WriteString(" | ")
		b.WriteString(strings.Join(d.names[d.inputs:], " "))
		b.WriteString(" | outputs\n")
	}
	for _, ex := range d.examples {
		writeRow(&b, d.inFormat, ex.Inputs)
		b.WriteString(" | ")
		writeRow(&b, d.targetFormat, ex.Targets)
		b.WriteString(" | ")
		writeRow(&b, d.outFormat, ex.Outputs)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeRow(b *strings.Builder, f string, values []float64) {
	for i, v := range values {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format(f, v))
	}
}
