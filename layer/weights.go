package layer

import "strconv"
import "strings"

import "github.com/pkg/errors"

// Tokenize splits a weight string into tokens.
func Tokenize(weights string) []string {
	return strings.Fields(weights)
}

// ParseWeights parses the first n tokens and returns them with the remaining tokens.
func ParseWeights(tokens []string, n int) (values []float64, rest []string, err error) {
	if len(tokens) < n {
		return nil, tokens, errors.WithStack(FormatError{
			Reason: "need " + strconv.Itoa(n) + " weights, have " + strconv.Itoa(len(tokens)),
		})
	}
	values = make([]float64, n)
	for i := range values {
		values[i], err = strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, tokens, errors.WithStack(FormatError{
				Reason: "token " + strconv.Itoa(i) + " " + strconv.Quote(tokens[i]) + " is not a number",
			})
		}
	}
	return values, tokens[n:], nil
}

// FormatWeights renders values in the shortest form which parses back exactly.
func FormatWeights(values []float64) string {
	var b strings.Builder
	for i, v := range values {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// JoinWeights joins dumps of consecutive layers.
func JoinWeights(dumps ...string) string {
	var parts = make([]string, 0, len(dumps))
	for _, d := range dumps {
		if d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}
