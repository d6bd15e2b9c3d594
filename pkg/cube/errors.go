package cube

import "fmt"

// FormatError reports a malformed cube: two corner coordinate sequences of
// different lengths. It carries both sequences' string representations for
// diagnostics, typically to identify bad upstream data in a decoder.
type FormatError struct {
	LowerLeft  string
	UpperRight string
}

func newFormatError(lowerLeft, upperRight []float64) *FormatError {
	return &FormatError{
		LowerLeft:  fmt.Sprintf("%v", lowerLeft),
		UpperRight: fmt.Sprintf("%v", upperRight),
	}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cube: corner dimensions do not match: lower-left %s, upper-right %s", e.LowerLeft, e.UpperRight)
}
