package tooltip

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOptions is wrapped by every option validation failure.
	ErrInvalidOptions = errors.New("invalid tooltip options")

	// ErrUnknownChart is returned when a chart has no recognised kind.
	ErrUnknownChart = errors.New("unknown chart kind")
)

// FormatError reports a failure of the caller's value transform function.
// It is never swallowed: a broken formatter is a configuration bug.
type FormatError struct {
	Anchor AnchorID
	Value  any

	// Wrapped is the formatter's own error.
	Wrapped error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("format value %v of anchor %d: %v", e.Value, e.Anchor, e.Wrapped)
}

// Unwrap returns the formatter's error.
func (e *FormatError) Unwrap() error {
	return e.Wrapped
}
