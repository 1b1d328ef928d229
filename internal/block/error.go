package block

import "fmt"

// ErrPrecondition matches every *PreconditionError via errors.Is.
var ErrPrecondition = &PreconditionError{Msg: "precondition violated"}

// PreconditionError is returned when an operation is called with arguments
// that would produce an inverted block.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: precondition: %s", e.Op, e.Msg)
}

func (e *PreconditionError) Is(target error) bool {
	targetErr, ok := target.(*PreconditionError)
	if !ok {
		return false
	}
	if targetErr == ErrPrecondition {
		return true
	}
	return e.Op == targetErr.Op && e.Msg == targetErr.Msg
}

func preconditionf(op string, format string, args ...any) error {
	return &PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
