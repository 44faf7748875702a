package schema

import (
	"fmt"
	"sort"

	"github.com/roach88/specdoc/internal/spec"
)

// CheckReferences reports every reference in s that does not resolve.
func CheckReferences(s *spec.Spec) []ValidationError {
	var errs []ValidationError

	contact := func(kind, field string, id uint8) {
		if _, err := s.FindContact(id); err != nil {
			errs = append(errs, ValidationError{
				Code:    ErrDanglingContact,
				Kind:    kind,
				Field:   field,
				Message: fmt.Sprintf("contact %d does not exist", id),
			})
		}
	}

	contact(string(spec.KindMeta), "owner_id", s.Meta.OwnerID)

	groups := make([]string, 0, len(s.Meta.Contacts))
	for name := range s.Meta.Contacts {
		groups = append(groups, name)
	}
	sort.Strings(groups)
	for _, group := range groups {
		for i, id := range s.Meta.Contacts[group] {
			contact(string(spec.KindMeta), fmt.Sprintf("contacts.%s[%d]", group, i), id)
		}
	}

	seen := make(map[string]bool)
	for _, br := range s.BusinessRequirements {
		kind := string(spec.KindBusinessRequirement)
		key := br.ID.String()
		if seen[key] {
			errs = append(errs, ValidationError{
				Code:    ErrDuplicateBusinessID,
				Kind:    kind,
				Field:   key + ".id",
				Message: fmt.Sprintf("business requirement id %s is used more than once", key),
			})
		}
		seen[key] = true

		if br.OwnerID != nil {
			contact(kind, key+".owner_id", *br.OwnerID)
		}
		if br.PersonaID != nil {
			if _, err := s.FindPersona(*br.PersonaID); err != nil {
				errs = append(errs, ValidationError{
					Code:    ErrDanglingPersona,
					Kind:    kind,
					Field:   key + ".persona_id",
					Message: fmt.Sprintf("persona %d does not exist", *br.PersonaID),
				})
			}
		}
	}

	for i, tr := range s.TechnicalRequirements {
		kind := string(spec.KindTechnicalRequirement)
		field := fmt.Sprintf("[%d]", i)
		if !s.HasBusinessRequirement(tr.RequirementID) {
			errs = append(errs, ValidationError{
				Code:    ErrOrphanTechnical,
				Kind:    kind,
				Field:   field + ".requirement_id",
				Message: fmt.Sprintf("business requirement %s does not exist", tr.RequirementID),
			})
		}
		if tr.AuthorID != nil {
			contact(kind, field+".author_id", *tr.AuthorID)
		}
	}

	return errs
}
