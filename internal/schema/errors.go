package schema

import "fmt"

// Validation error codes (E100-E199).
const (
	// Record shape errors (E100-E109)
	ErrRecordShape     = "E101" // record does not match its CUE definition
	ErrRecordUndecoded = "E102" // record file could not be decoded
	ErrUnknownKind     = "E103" // no definition for record kind

	// Reference errors (E110-E119)
	ErrDanglingContact     = "E110" // owner/author/group id has no contact
	ErrDanglingPersona     = "E111" // persona id has no persona
	ErrOrphanTechnical     = "E112" // technical requirement names no business requirement
	ErrDuplicateBusinessID = "E113" // two business requirements share an id
)

// ValidationError describes one problem found in a spec tree.
type ValidationError struct {
	Code    string `json:"code"`
	Kind    string `json:"kind"`
	File    string `json:"file,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("[%s] %s: %s: %s", e.Code, e.File, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}
