package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorKind classifies registry failures.
type ErrorKind int

const (
	// KindInvalidArgument is a malformed tag name, filter argument or unit.
	KindInvalidArgument ErrorKind = iota
	// KindNotFound is an unknown tag or a file that vanished before stat.
	KindNotFound
	// KindIO is an unreadable or missing base directory during a scan.
	KindIO
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "io failure"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is checks against any *Error of the matching kind.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrIO              = errors.New("io failure")
)

// Error is returned by every registry operation that fails.
type Error struct {
	Kind    ErrorKind // Failure class
	Op      string    // Operation that failed (add, remove, get, report)
	Subject string    // Offending tag, key, unit or path
	Err     error     // Underlying error (optional)
}

func newError(kind ErrorKind, op, subject string, err error) *Error {
	return &Error{Kind: kind, Op: op, Subject: subject, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %q: %s", e.Op, e.Subject, e.Kind))
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind == KindInvalidArgument
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrIO:
		return e.Kind == KindIO
	}
	return false
}

// classifyFSError maps a filesystem error to NotFound or IO.
func classifyFSError(op, subject string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return newError(KindNotFound, op, subject, err)
	}
	return newError(KindIO, op, subject, err)
}
