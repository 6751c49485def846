package carousel

import (
	"errors"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("io failure")
	ErrExtraction   = errors.New("extraction failure")
)

// Error is returned by every fallible operation of this package, Kind is one of
// the sentinel errors above and can be checked with errors.Is.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
