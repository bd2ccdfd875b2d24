package layer

import "fmt"

import "github.com/pkg/errors"

// ShapeMismatchError reports vectors or layers whose dimensions disagree.
type ShapeMismatchError struct {
	What string
	Want int
	Got  int
}

func (err ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s: want %d, got %d", err.What, err.Want, err.Got)
}

// FormatError reports a malformed weight string.
type FormatError struct {
	Reason string
}

func (err FormatError) Error() string {
	return "weight format: " + err.Reason
}

// CheckLen returns a ShapeMismatchError when got differs from want.
func CheckLen(what string, want, got int) error {
	if want != got {
		return errors.WithStack(ShapeMismatchError{What: what, Want: want, Got: got})
	}
	return nil
}

// IsShapeMismatch reports whether err was caused by a ShapeMismatchError.
func IsShapeMismatch(err error) bool {
	var target ShapeMismatchError
	return errors.As(err, &target)
}

// IsFormat reports whether err was caused by a FormatError.
func IsFormat(err error) bool {
	var target FormatError
	return errors.As(err, &target)
}
