package busyset

import "fmt"

var (
	ErrNoCapacity  = &SetError{Msg: "no free window is long enough"}
	ErrOutOfDomain = &SetError{Msg: "block lies outside the domain"}
)

// SetError is returned by Set operations. A SetError matches, via errors.Is,
// the sentinel that carries the same Msg.
type SetError struct {
	Op  string
	Msg string
}

func (e *SetError) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *SetError) Is(target error) bool {
	targetErr, ok := target.(*SetError)
	if !ok {
		return false
	}
	if targetErr.Op == "" {
		return e.Msg == targetErr.Msg
	}
	return e.Op == targetErr.Op && e.Msg == targetErr.Msg
}

func setError(sentinel *SetError, format string, args ...any) error {
	return &SetError{Op: fmt.Sprintf(format, args...), Msg: sentinel.Msg}
}
