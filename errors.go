package printstate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned for op-codes outside the recognized set and for commands
	// which are recognized but can not be modelled, such as G20.
	ErrUnsupported = errors.New("unsupported command")

	// ErrProtocol is returned when a recognized command breaks one of its invariants: an
	// arc without both end point coordinates, or parking a tool other than the active one.
	ErrProtocol = errors.New("protocol violation")
)

// LineError locates a fatal error in the source text.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (le *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", le.Line, le.Text, le.Err)
}

func (le *LineError) Unwrap() error {
	return le.Err
}

// Warning is an argument which was skipped without stopping the build.
type Warning struct {
	Line int // 1-based; 0 when not known
	Text string
	Msg  string
}

func (w Warning) String() string {
	if w.Line == 0 {
		return w.Msg
	}
	return fmt.Sprintf("line %d: %q: %s", w.Line, w.Text, w.Msg)
}
