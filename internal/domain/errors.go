package domain

import (
	"errors"
	"fmt"
)

// FailureKind tells a caller why an operation did not succeed.
type FailureKind int

const (
	Unknown FailureKind = iota
	NotFound
	AccessDenied
	IOFailure
	Validation
	Cancelled
)

func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case AccessDenied:
		return "access denied"
	case IOFailure:
		return "I/O failure"
	case Validation:
		return "validation failure"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyFilename       = errors.New("filename cannot be empty")
	ErrFileNotExist        = errors.New("file does not exist")
	ErrInvalidFilename     = errors.New("invalid characters in filename")
	ErrCancelled           = errors.New("input cancelled")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrUndecodable         = errors.New("content is not valid in the configured encoding")
)

// Failure is the error returned by the read, write and collect operations.
type Failure struct {
	Op   string
	Path string
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Path == "" {
		return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
	}
	return fmt.Sprintf("%s %s: %s: %v", f.Op, f.Path, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf returns the kind of the first Failure in err's chain, Unknown if
// there is none.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return Unknown
}
