package spec

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed records.cue
var recordsSchema string

// ErrUnknownKind is returned by Shapes.Check for a kind with no definition.
var ErrUnknownKind = errors.New("no schema for record kind")

// ShapeError is one mismatch between a decoded record and its definition.
type ShapeError struct {
	Field   string
	Message string
}

func (e ShapeError) Error() string {
	return e.Field + ": " + e.Message
}

// ShapeErrors collects every mismatch found in one record.
type ShapeErrors []ShapeError

func (es ShapeErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Shapes checks decoded records against the embedded CUE definitions,
// one per Kind. Required fields must be present and concrete; unknown
// fields are tolerated.
type Shapes struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewShapes compiles the record definitions.
func NewShapes() (*Shapes, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(recordsSchema, cue.Filename("records.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling record schema: %w", err)
	}
	return &Shapes{ctx: ctx, schema: schema}, nil
}

// Check unifies record with the definition for kind. The error result is
// for records that cannot be checked at all (unknown kind, values CUE
// cannot encode); mismatches come back as ShapeErrors.
func (s *Shapes) Check(kind Kind, record map[string]any) (ShapeErrors, error) {
	def := s.schema.LookupPath(cue.ParsePath("#" + string(kind)))
	if !def.Exists() {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	data := s.ctx.Encode(record)
	if err := data.Err(); err != nil {
		return nil, err
	}

	err := def.Unify(data).Validate(cue.Concrete(true))
	if err == nil {
		return nil, nil
	}

	var problems ShapeErrors
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		problems = append(problems, ShapeError{
			Field:   fieldPath(e.Path()),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return problems, nil
}

// fieldPath joins CUE path selectors, dropping the leading definition name.
func fieldPath(path []string) string {
	if len(path) > 0 && strings.HasPrefix(path[0], "#") {
		path = path[1:]
	}
	if len(path) == 0 {
		return "record"
	}
	return strings.Join(path, ".")
}
