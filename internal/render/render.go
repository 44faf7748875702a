package render

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/roach88/specdoc/internal/model"
	"github.com/roach88/specdoc/internal/spec"
)

// GapOrder selects how known gaps are sorted.
type GapOrder string

const (
	// GapOrderString sorts by the requirement id text ("10.1" before "2.1").
	GapOrderString GapOrder = "string"
	// GapOrderHierarchical sorts parseable ids numerically, then the rest as text.
	GapOrderHierarchical GapOrder = "hierarchical"
)

// ValidGapOrders lists the accepted GapOrder values.
var ValidGapOrders = []GapOrder{GapOrderString, GapOrderHierarchical}

// DefaultHeadingMarker is the markdown heading glyph.
const DefaultHeadingMarker = "#"

// Options configures a Renderer. Zero values select the defaults.
type Options struct {
	HeadingMarker string
	GapOrder      GapOrder
}

// Renderer renders specs to markdown.
type Renderer struct {
	marker   string
	gapOrder GapOrder
}

// New creates a Renderer.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{marker: opts.HeadingMarker, gapOrder: opts.GapOrder}
	if r.marker == "" {
		r.marker = DefaultHeadingMarker
	}
	if r.gapOrder == "" {
		r.gapOrder = GapOrderString
	}
	if !slices.Contains(ValidGapOrders, r.gapOrder) {
		return nil, fmt.Errorf("invalid gap order %q: must be one of %v", r.gapOrder, ValidGapOrders)
	}
	return r, nil
}

// Render writes the document for s to w.
func (r *Renderer) Render(w io.Writer, s *spec.Spec) error {
	var buf bytes.Buffer
	d := &document{buf: &buf, marker: r.marker}

	if err := r.header(d, s); err != nil {
		return err
	}
	r.knownGaps(d, s)
	r.personas(d, s)
	if err := r.requirements(d, s); err != nil {
		return err
	}
	d.heading(2, "SLA")
	d.line(s.SLA)
	d.blank()
	r.glossary(d, s)
	if err := r.contacts(d, s); err != nil {
		return err
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) header(d *document, s *spec.Spec) error {
	owner, err := s.FindContact(s.Meta.OwnerID)
	if err != nil {
		return fmt.Errorf("document owner: %w", err)
	}

	d.heading(1, "Specification")
	d.paragraph("Version: %d", s.Meta.Version)
	d.paragraph("Date: %s", s.Meta.Date)
	d.paragraph("Owner: %s", owner)
	d.blank()

	d.heading(2, "Description")
	d.line(s.Meta.Description)
	d.blank()
	return nil
}

func (r *Renderer) knownGaps(d *document, s *spec.Spec) {
	if len(s.KnownGaps) == 0 {
		return
	}

	gaps := slices.Clone(s.KnownGaps)
	switch r.gapOrder {
	case GapOrderHierarchical:
		slices.SortStableFunc(gaps, compareGapsHierarchical)
	default:
		slices.SortStableFunc(gaps, func(a, b model.KnownGap) int {
			return strings.Compare(a.RequirementID, b.RequirementID)
		})
	}

	d.heading(2, "Known Gaps")
	for _, gap := range gaps {
		d.heading(3, gap.RequirementID)
		d.line(gap.Description)
		d.blank()
	}
}

// compareGapsHierarchical orders parseable ids numerically ahead of ids
// that do not parse, which fall back to text order.
func compareGapsHierarchical(a, b model.KnownGap) int {
	idA, errA := model.ParseHierarchicalID(a.RequirementID)
	idB, errB := model.ParseHierarchicalID(b.RequirementID)
	switch {
	case errA == nil && errB == nil:
		return idA.Compare(idB)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a.RequirementID, b.RequirementID)
	}
}

func (r *Renderer) personas(d *document, s *spec.Spec) {
	if len(s.Personas) == 0 {
		return
	}

	personas := slices.Clone(s.Personas)
	slices.SortStableFunc(personas, func(a, b model.Persona) int {
		return strings.Compare(a.Name, b.Name)
	})

	d.heading(2, "Personas")
	for _, p := range personas {
		d.heading(3, p.Name)
		d.line(p.Description)
		d.blank()
	}
	d.blank()
}

func (r *Renderer) requirements(d *document, s *spec.Spec) error {
	reqs := slices.Clone(s.BusinessRequirements)
	slices.SortStableFunc(reqs, func(a, b model.BusinessRequirement) int {
		return a.ID.Compare(b.ID)
	})

	d.heading(2, "Requirements")
	for _, req := range reqs {
		if err := r.requirement(d, s, req); err != nil {
			return fmt.Errorf("requirement %s: %w", req.ID, err)
		}
	}
	return nil
}

func (r *Renderer) requirement(d *document, s *spec.Spec, req model.BusinessRequirement) error {
	level := req.HeadingLevel()
	d.heading(level, fmt.Sprintf("%s. %s", req.ID, req.Name))

	if req.Date != nil {
		d.paragraph("Date: %s", req.Date.Numeric())
	}
	if req.OwnerID != nil {
		owner, err := s.FindContact(*req.OwnerID)
		if err != nil {
			return fmt.Errorf("owner: %w", err)
		}
		d.paragraph("Owner: %s", owner)
	}
	if req.PersonaID != nil {
		persona, err := s.FindPersona(*req.PersonaID)
		if err != nil {
			return fmt.Errorf("persona: %w", err)
		}
		d.paragraph("Persona: %s", persona.Name)
	}
	if req.Note != nil {
		d.line(*req.Note)
	}
	d.blank()

	technical := s.FindTechnicalRequirements(req.ID)
	if len(technical) == 0 {
		return nil
	}

	d.heading(level+1, "Technical Requirements")
	for _, tr := range technical {
		d.paragraph("%s", tr.Description)
		if tr.AuthorID != nil {
			author, err := s.FindContact(*tr.AuthorID)
			if err != nil {
				return fmt.Errorf("technical requirement author: %w", err)
			}
			d.paragraph("Author: %s", author)
		}
		if tr.CodeURL != nil {
			d.paragraph("[Code](%s)", *tr.CodeURL)
		}
		if tr.TestURL != nil {
			d.paragraph("[Tests](%s)", *tr.TestURL)
		}
		d.blank()
	}
	return nil
}

func (r *Renderer) glossary(d *document, s *spec.Spec) {
	if len(s.Terms) == 0 {
		return
	}

	terms := slices.Clone(s.Terms)
	slices.SortStableFunc(terms, func(a, b model.Term) int {
		return strings.Compare(a.Name, b.Name)
	})

	d.heading(2, "Glossary")
	for _, term := range terms {
		d.heading(3, term.Name)
		d.line(term.Definition)
		d.blank()
	}
}

func (r *Renderer) contacts(d *document, s *spec.Spec) error {
	groups := make([]string, 0, len(s.Meta.Contacts))
	for name := range s.Meta.Contacts {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	d.heading(2, "Contacts")
	for _, group := range groups {
		d.heading(3, group)
		for _, id := range s.Meta.Contacts[group] {
			contact, err := s.FindContact(id)
			if err != nil {
				return fmt.Errorf("contact group %q: %w", group, err)
			}
			d.line("- " + contact.String())
		}
		d.blank()
	}
	return nil
}

// document accumulates output lines.
type document struct {
	buf    *bytes.Buffer
	marker string
}

func (d *document) heading(level int, text string) {
	d.buf.WriteString(strings.Repeat(d.marker, level))
	d.buf.WriteByte(' ')
	d.buf.WriteString(text)
	d.buf.WriteByte('\n')
}

func (d *document) line(text string) {
	d.buf.WriteString(text)
	d.buf.WriteByte('\n')
}

// paragraph writes a formatted line followed by a blank line.
func (d *document) paragraph(format string, args ...any) {
	fmt.Fprintf(d.buf, format, args...)
	d.buf.WriteString("\n\n")
}

func (d *document) blank() {
	d.buf.WriteByte('\n')
}
