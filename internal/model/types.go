package model

// BusinessRequirement is a numbered requirement entry.
type BusinessRequirement struct {
	ID        HierarchicalID `toml:"id" yaml:"id"`
	Name      string         `toml:"name" yaml:"name"`
	Date      *Date          `toml:"date,omitempty" yaml:"date,omitempty"`
	Note      *string        `toml:"note,omitempty" yaml:"note,omitempty"`
	OwnerID   *uint8         `toml:"owner_id,omitempty" yaml:"owner_id,omitempty"`
	PersonaID *uint8         `toml:"persona_id,omitempty" yaml:"persona_id,omitempty"`
}

// HeadingLevel is the markdown heading depth: id depth + 3.
func (r BusinessRequirement) HeadingLevel() int {
	return r.ID.Depth() + 3
}

// TechnicalRequirement is an implementation note attached to one business
// requirement.
type TechnicalRequirement struct {
	RequirementID HierarchicalID `toml:"requirement_id" yaml:"requirement_id"`
	AuthorID      *uint8         `toml:"author_id,omitempty" yaml:"author_id,omitempty"`
	Description   string         `toml:"description" yaml:"description"`
	CodeURL       *string        `toml:"code_url,omitempty" yaml:"code_url,omitempty"`
	TestURL       *string        `toml:"test_url,omitempty" yaml:"test_url,omitempty"`
}

// Persona is a user archetype referenced by business requirements.
type Persona struct {
	ID          uint8  `toml:"id" yaml:"id" json:"id"`
	Name        string `toml:"name" yaml:"name" json:"name"`
	Description string `toml:"description" yaml:"description" json:"description"`
}

// Contact is a person referenced as owner or author.
type Contact struct {
	ID    uint8   `toml:"id" yaml:"id" json:"id"`
	Name  string  `toml:"name" yaml:"name" json:"name"`
	Email *string `toml:"email,omitempty" yaml:"email,omitempty" json:"email,omitempty"`
}

// String renders the contact as a mailto link when an email is known.
func (c Contact) String() string {
	if c.Email != nil {
		return "[" + c.Name + "](mailto:" + *c.Email + ")"
	}
	return c.Name
}

// EmailOrEmpty returns the email, or "" when none is set.
func (c Contact) EmailOrEmpty() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}

// Term is a glossary entry.
type Term struct {
	Name       string `toml:"name" yaml:"name"`
	Definition string `toml:"definition" yaml:"definition"`
}

// KnownGap documents a requirement that is knowingly incomplete.
// RequirementID is kept as written; it is not parsed.
type KnownGap struct {
	RequirementID string `toml:"requirement_id" yaml:"requirement_id"`
	Description   string `toml:"description" yaml:"description"`
}

// Meta is the document-level metadata from meta.toml.
type Meta struct {
	Version     uint8              `toml:"version" yaml:"version"`
	Date        Date               `toml:"date" yaml:"date"`
	OwnerID     uint8              `toml:"owner_id" yaml:"owner_id"`
	Description string             `toml:"description" yaml:"description"`
	Contacts    map[string][]uint8 `toml:"contacts" yaml:"contacts"`
}
