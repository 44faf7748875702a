package spec

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/specdoc/internal/model"
	"github.com/roach88/specdoc/internal/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func load(t *testing.T, tree testutil.Tree) (*Spec, error) {
	t.Helper()
	return Load(tree.Write(t), WithLogger(quietLogger()))
}

func TestLoad_Minimal(t *testing.T) {
	s, err := load(t, testutil.MinimalTree())
	require.NoError(t, err)

	assert.Equal(t, uint8(1), s.Meta.Version)
	assert.Equal(t, "2023-04-05", s.Meta.Date.String())
	assert.Equal(t, uint8(1), s.Meta.OwnerID)
	assert.Equal(t, "Minimal specification.", s.Meta.Description)
	assert.Equal(t, map[string][]uint8{"owners": {1}}, s.Meta.Contacts)
	assert.Equal(t, "Best effort.", s.SLA)

	require.Len(t, s.Contacts, 1)
	assert.Equal(t, "Ada", s.Contacts[0].Name)
	assert.Empty(t, s.BusinessRequirements)
	assert.Empty(t, s.TechnicalRequirements)
}

func TestLoad_AllRecordKinds(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"business_requirements/1.1.toml": `id = "1.1"
name = "Login"
date = 2023-01-02
note = "Users sign in."
owner_id = 1
persona_id = 3
`,
		"technical_requirements/login.toml": `requirement_id = "1.1"
author_id = 1
description = "Use OIDC."
code_url = "https://example.com/code"
test_url = "https://example.com/tests"
`,
		"personas/admin.toml": "id = 3\nname = \"Admin\"\ndescription = \"Runs things.\"\n",
		"terms/oidc.toml":     "name = \"OIDC\"\ndefinition = \"OpenID Connect.\"\n",
		"known_gaps/gap.toml": "requirement_id = \"1.1\"\ndescription = \"No MFA yet.\"\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)

	require.Len(t, s.BusinessRequirements, 1)
	br := s.BusinessRequirements[0]
	assert.Equal(t, "1.1", br.ID.String())
	assert.Equal(t, "Login", br.Name)
	require.NotNil(t, br.Date)
	assert.Equal(t, "2023-1-2", br.Date.Numeric())
	require.NotNil(t, br.Note)
	assert.Equal(t, "Users sign in.", *br.Note)
	require.NotNil(t, br.OwnerID)
	assert.Equal(t, uint8(1), *br.OwnerID)
	require.NotNil(t, br.PersonaID)
	assert.Equal(t, uint8(3), *br.PersonaID)

	require.Len(t, s.TechnicalRequirements, 1)
	tr := s.TechnicalRequirements[0]
	assert.True(t, tr.RequirementID.Equal(br.ID))
	require.NotNil(t, tr.CodeURL)
	assert.Equal(t, "https://example.com/code", *tr.CodeURL)

	require.Len(t, s.Personas, 1)
	require.Len(t, s.Terms, 1)
	require.Len(t, s.KnownGaps, 1)
	assert.Equal(t, "1.1", s.KnownGaps[0].RequirementID)
}

func TestLoad_YAMLRecords(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"business_requirements/2.yaml": "id: \"2.3\"\nname: Export\ndate: 2024-02-09\nowner_id: 1\n",
		"contacts/grace.yml":           "id: 2\nname: Grace\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)

	require.Len(t, s.BusinessRequirements, 1)
	br := s.BusinessRequirements[0]
	assert.Equal(t, "2.3", br.ID.String())
	require.NotNil(t, br.Date)
	assert.Equal(t, "2024-2-9", br.Date.Numeric())

	require.Len(t, s.Contacts, 2)
	assert.Equal(t, "Ada", s.Contacts[0].Name, "ada.toml sorts before grace.yml")
	assert.Equal(t, "Grace", s.Contacts[1].Name)
	assert.Nil(t, s.Contacts[1].Email)
}

func TestLoad_MissingTechnicalRequirementsDirectory(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"business_requirements/1.toml": "id = \"1\"\nname = \"Root\"\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)
	assert.Empty(t, s.TechnicalRequirements)
	assert.Len(t, s.BusinessRequirements, 1)
}

func TestLoad_MissingMeta(t *testing.T) {
	root := testutil.MinimalTree().Without("meta.toml").Write(t)

	_, err := Load(root, WithLogger(quietLogger()))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeIO, loadErr.Code)
	assert.Equal(t, filepath.Join(root, "meta.toml"), loadErr.Path)
	assert.Contains(t, err.Error(), "meta.toml")
}

func TestLoad_MissingSLA(t *testing.T) {
	_, err := load(t, testutil.MinimalTree().Without("sla/sla.md"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeIO, loadErr.Code)
	assert.Contains(t, loadErr.Path, "sla.md")
}

func TestLoad_RootErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"), WithLogger(quietLogger()))
		assert.Equal(t, ErrCodeIO, ErrorCode(err))
	})

	t.Run("file", func(t *testing.T) {
		root := testutil.MinimalTree().Write(t)
		_, err := Load(filepath.Join(root, "meta.toml"), WithLogger(quietLogger()))
		assert.Equal(t, ErrCodeNotDir, ErrorCode(err))
	})
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"bad toml", "terms/bad.toml", "name = \n"},
		{"bad id", "business_requirements/x.toml", "id = \"1.x\"\nname = \"X\"\n"},
		{"id out of range", "business_requirements/x.toml", "id = \"1.300\"\nname = \"X\"\n"},
		{"contact id out of range", "contacts/big.toml", "id = 256\nname = \"Big\"\n"},
		{"bad yaml", "terms/bad.yaml", "name: [unclosed\n"},
		{"business requirement without id", "business_requirements/noid.toml", "name = \"No id at all\"\n"},
		{"technical requirement without requirement_id", "technical_requirements/t.toml", "description = \"Nothing to attach to.\"\n"},
		{"contact without id", "contacts/noid.toml", "name = \"Nobody\"\n"},
		{"persona without description", "personas/p.yaml", "id: 1\nname: P\n"},
		{"meta without owner", "meta.toml", "version = 1\ndate = 2023-04-05\ndescription = \"d\"\n[contacts]\n"},
		{"empty id", "business_requirements/empty.toml", "id = \"\"\nname = \"Blank\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.MinimalTree().With(testutil.Tree{tt.file: tt.body}).Write(t)

			_, err := Load(root, WithLogger(quietLogger()))
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, ErrCodeParse, loadErr.Code)
			assert.Equal(t, filepath.Join(root, filepath.FromSlash(tt.file)), loadErr.Path)
		})
	}
}

func TestLoad_MissingRequiredFieldNamesTheField(t *testing.T) {
	root := testutil.MinimalTree().With(testutil.Tree{
		"business_requirements/noid.toml": "name = \"No id at all\"\n",
	}).Write(t)

	s, err := Load(root, WithLogger(quietLogger()))
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Equal(t, ErrCodeParse, ErrorCode(err))

	var problems ShapeErrors
	require.ErrorAs(t, err, &problems)
	var fields []string
	for _, p := range problems {
		fields = append(fields, p.Field)
	}
	assert.Contains(t, fields, "id")
	assert.Contains(t, err.Error(), "noid.toml")
}

func TestLoad_UnknownFieldsTolerated(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"terms/extra.toml": "name = \"API\"\ndefinition = \"x\"\nsee_also = \"SDK\"\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)
	require.Len(t, s.Terms, 1)
}

func TestLoad_SLAVerbatim(t *testing.T) {
	sla := "Cafe\u0301 hours:\n\n* 24/7\r\n"
	tree := testutil.MinimalTree().With(testutil.Tree{"sla/sla.md": sla})

	s, err := load(t, tree)
	require.NoError(t, err)
	assert.Equal(t, sla, s.SLA, "combining accent and line endings are kept")
}

func TestLoad_SkipsNonRecordFiles(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"terms/README.md":        "not a record",
		"terms/.hidden.toml":     "garbage =",
		"terms/nested/deep.toml": "garbage =",
		"terms/ok.toml":          "name = \"OK\"\ndefinition = \"fine\"\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)
	require.Len(t, s.Terms, 1)
	assert.Equal(t, "OK", s.Terms[0].Name)
}

func TestLoad_NormalizesUnicode(t *testing.T) {
	tree := testutil.MinimalTree().With(testutil.Tree{
		"terms/jose.toml": "name = \"Jose\u0301\"\ndefinition = \"x\"\n",
	})

	s, err := load(t, tree)
	require.NoError(t, err)
	require.Len(t, s.Terms, 1)
	assert.Equal(t, "Jos\u00e9", s.Terms[0].Name, "combining accent is composed")
}

func TestFindContact(t *testing.T) {
	s, err := load(t, testutil.MinimalTree())
	require.NoError(t, err)

	c, err := s.FindContact(1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.Name)

	_, err = s.FindContact(9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "contact", nf.Kind)
	assert.Equal(t, uint8(9), nf.ID)
	assert.Contains(t, err.Error(), "contact 9 not found")
}

func TestFindPersona(t *testing.T) {
	s := &Spec{Personas: []model.Persona{{ID: 2, Name: "Operator"}}}

	p, err := s.FindPersona(2)
	require.NoError(t, err)
	assert.Equal(t, "Operator", p.Name)

	_, err = s.FindPersona(3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, ErrCodeNotFound, ErrorCode(err))
}

func TestFindTechnicalRequirements(t *testing.T) {
	id := model.MustParseHierarchicalID("1.1")
	s := &Spec{
		TechnicalRequirements: []model.TechnicalRequirement{
			{RequirementID: id, Description: "first"},
			{RequirementID: model.MustParseHierarchicalID("1.1.1"), Description: "other"},
			{RequirementID: model.MustParseHierarchicalID("01.1"), Description: "second"},
		},
	}

	got := s.FindTechnicalRequirements(id)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Description)
	assert.Equal(t, "second", got[1].Description)

	assert.Empty(t, s.FindTechnicalRequirements(model.MustParseHierarchicalID("9")))
}

func TestRecordFiles(t *testing.T) {
	root := testutil.MinimalTree().With(testutil.Tree{
		"business_requirements/1.toml": "id = \"1\"\nname = \"Root\"\n",
		"terms/a.toml":                 "name = \"A\"\ndefinition = \"a\"\n",
	}).Write(t)

	files, err := RecordFiles(root, quietLogger())
	require.NoError(t, err)

	var kinds []Kind
	for _, f := range files {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []Kind{KindMeta, KindTerm, KindContact, KindBusinessRequirement}, kinds)
}

func TestDecodeMap(t *testing.T) {
	root := testutil.MinimalTree().Write(t)

	record, err := DecodeMap(filepath.Join(root, "contacts", "ada.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", record["name"])
	assert.EqualValues(t, 1, record["id"])
}
