package spec

import (
	"errors"
	"fmt"
)

// Error codes for load and lookup failures.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeIO       = "E002" // Required file missing or unreadable
	ErrCodeParse    = "E003" // Malformed record content
	ErrCodeNotDir   = "E004" // Spec root is not a directory
	ErrCodeNotFound = "E005" // Referenced id does not exist
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// LoadError reports a failure reading or decoding a file of the spec tree.
type LoadError struct {
	Code string
	Path string
	Line int // 1-based, 0 when the decoder gives no position
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", e.Path, e.Line, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Code, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a contact or persona id missing from the loaded set.
type NotFoundError struct {
	Kind string // "contact" or "persona"
	ID   uint8
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %d not found", ErrCodeNotFound, e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ErrorCode returns the code carried by err, or ErrCodeGeneric.
func ErrorCode(err error) string {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Code
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return ErrCodeNotFound
	}
	return ErrCodeGeneric
}
