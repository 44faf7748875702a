package schema

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/specdoc/internal/spec"
)

// Checker validates decoded records against the record definitions the
// loader enforces, reporting every mismatch instead of the first.
type Checker struct {
	shapes *spec.Shapes
}

// NewChecker compiles the record schema.
func NewChecker() (*Checker, error) {
	shapes, err := spec.NewShapes()
	if err != nil {
		return nil, err
	}
	return &Checker{shapes: shapes}, nil
}

// CheckRecord unifies record with the definition for kind and returns every
// mismatch. file is only used to label the errors.
func (c *Checker) CheckRecord(kind spec.Kind, file string, record map[string]any) []ValidationError {
	problems, err := c.shapes.Check(kind, record)
	if errors.Is(err, spec.ErrUnknownKind) {
		return []ValidationError{{
			Code:    ErrUnknownKind,
			Kind:    string(kind),
			File:    file,
			Field:   "kind",
			Message: fmt.Sprintf("no schema for record kind %q", kind),
		}}
	}
	if err != nil {
		return []ValidationError{{
			Code:    ErrRecordUndecoded,
			Kind:    string(kind),
			File:    file,
			Field:   "record",
			Message: err.Error(),
		}}
	}

	var errs []ValidationError
	for _, p := range problems {
		errs = append(errs, ValidationError{
			Code:    ErrRecordShape,
			Kind:    string(kind),
			File:    file,
			Field:   p.Field,
			Message: p.Message,
		})
	}
	return errs
}

// CheckTree decodes every record file under root and checks its shape.
// Undecodable records are reported, not returned as errors; the error
// result is reserved for files that cannot be read at all.
func (c *Checker) CheckTree(root string, logger *slog.Logger) ([]ValidationError, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files, err := spec.RecordFiles(root, logger)
	if err != nil {
		return nil, err
	}

	var errs []ValidationError
	for _, f := range files {
		logger.Debug("checking record", "kind", f.Kind, "path", f.Path)

		record, err := spec.DecodeMap(f.Path)
		if err != nil {
			var loadErr *spec.LoadError
			if errors.As(err, &loadErr) && loadErr.Code == spec.ErrCodeParse {
				errs = append(errs, ValidationError{
					Code:    ErrRecordUndecoded,
					Kind:    string(f.Kind),
					File:    f.Path,
					Field:   "record",
					Message: loadErr.Err.Error(),
				})
				continue
			}
			return nil, err
		}

		errs = append(errs, c.CheckRecord(f.Kind, f.Path, record)...)
	}
	return errs, nil
}
