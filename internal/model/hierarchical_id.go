package model

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// HierarchicalID is a dotted sequence of integer segments, e.g. "1.2.3".
//
// Ordering is component-wise over the segments, so "2.1" sorts before
// "12.1" and "1.1" sorts before "1.1.1". The zero value has no segments
// and is only produced by a failed parse.
type HierarchicalID struct {
	segments []uint8
}

// ParseError reports a malformed hierarchical id.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hierarchical id %q: %s", e.Input, e.Reason)
}

// ParseHierarchicalID parses a dot-separated id. Each segment must be a
// decimal integer in [0, 255].
func ParseHierarchicalID(text string) (HierarchicalID, error) {
	if text == "" {
		return HierarchicalID{}, &ParseError{Input: text, Reason: "empty id"}
	}

	parts := strings.Split(text, ".")
	segments := make([]uint8, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return HierarchicalID{}, &ParseError{Input: text, Reason: fmt.Sprintf("segment %d is empty", i+1)}
		}
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return HierarchicalID{}, &ParseError{Input: text, Reason: fmt.Sprintf("segment %q exceeds 255", part)}
			}
			return HierarchicalID{}, &ParseError{Input: text, Reason: fmt.Sprintf("segment %q is not a number", part)}
		}
		segments = append(segments, uint8(n))
	}

	return HierarchicalID{segments: segments}, nil
}

// MustParseHierarchicalID is like ParseHierarchicalID but panics on error.
func MustParseHierarchicalID(text string) HierarchicalID {
	id, err := ParseHierarchicalID(text)
	if err != nil {
		panic(err)
	}
	return id
}

// Depth returns the number of segments.
func (id HierarchicalID) Depth() int {
	return len(id.segments)
}

// IsZero reports whether the id has no segments.
func (id HierarchicalID) IsZero() bool {
	return len(id.segments) == 0
}

// Segments returns a copy of the segments.
func (id HierarchicalID) Segments() []uint8 {
	return slices.Clone(id.segments)
}

// Compare returns -1, 0 or +1 depending on whether id sorts before, equal to
// or after other.
func (id HierarchicalID) Compare(other HierarchicalID) int {
	return slices.Compare(id.segments, other.segments)
}

// Less reports whether id sorts before other.
func (id HierarchicalID) Less(other HierarchicalID) bool {
	return id.Compare(other) < 0
}

// Equal reports whether both ids have the same segments.
func (id HierarchicalID) Equal(other HierarchicalID) bool {
	return slices.Equal(id.segments, other.segments)
}

// String joins the segments with '.'.
func (id HierarchicalID) String() string {
	var b strings.Builder
	for i, s := range id.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (id HierarchicalID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both the TOML and YAML
// decoders route string scalars through it.
func (id *HierarchicalID) UnmarshalText(text []byte) error {
	parsed, err := ParseHierarchicalID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
