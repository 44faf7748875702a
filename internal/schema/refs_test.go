package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specdoc/internal/model"
	"github.com/roach88/specdoc/internal/spec"
)

func u8(v uint8) *uint8 { return &v }

func TestCheckReferences_Clean(t *testing.T) {
	s := &spec.Spec{
		Meta:     model.Meta{OwnerID: 1, Contacts: map[string][]uint8{"owners": {1}}},
		Contacts: []model.Contact{{ID: 1, Name: "Ada"}},
		Personas: []model.Persona{{ID: 2, Name: "Admin"}},
		BusinessRequirements: []model.BusinessRequirement{
			{ID: model.MustParseHierarchicalID("1"), Name: "A", OwnerID: u8(1), PersonaID: u8(2)},
		},
		TechnicalRequirements: []model.TechnicalRequirement{
			{RequirementID: model.MustParseHierarchicalID("1"), AuthorID: u8(1)},
		},
	}

	assert.Empty(t, CheckReferences(s))
}

func TestCheckReferences_ReportsEverything(t *testing.T) {
	s := &spec.Spec{
		Meta:     model.Meta{OwnerID: 9, Contacts: map[string][]uint8{"ops": {1, 8}}},
		Contacts: []model.Contact{{ID: 1, Name: "Ada"}},
		BusinessRequirements: []model.BusinessRequirement{
			{ID: model.MustParseHierarchicalID("1"), Name: "A", OwnerID: u8(7), PersonaID: u8(3)},
			{ID: model.MustParseHierarchicalID("01"), Name: "A again"},
		},
		TechnicalRequirements: []model.TechnicalRequirement{
			{RequirementID: model.MustParseHierarchicalID("5.5"), AuthorID: u8(6)},
		},
	}

	errs := CheckReferences(s)

	var codes []string
	for _, e := range errs {
		codes = append(codes, e.Code)
	}
	require.Equal(t, []string{
		ErrDanglingContact,     // meta owner 9
		ErrDanglingContact,     // ops group id 8
		ErrDanglingContact,     // requirement 1 owner 7
		ErrDanglingPersona,     // requirement 1 persona 3
		ErrDuplicateBusinessID, // "01" repeats "1"
		ErrOrphanTechnical,     // 5.5
		ErrDanglingContact,     // author 6
	}, codes)

	assert.Equal(t, "contacts.ops[1]", errs[1].Field)
	assert.Equal(t, "1.persona_id", errs[3].Field)
	assert.Contains(t, errs[5].Message, "5.5")
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Code: ErrDanglingPersona, Field: "1.persona_id", Message: "persona 3 does not exist"}
	assert.Equal(t, "[E111] 1.persona_id: persona 3 does not exist", e.Error())

	e.File = "br/1.toml"
	assert.Equal(t, "[E111] br/1.toml: 1.persona_id: persona 3 does not exist", e.Error())
}
