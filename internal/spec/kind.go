package spec

// Kind identifies a record type and, for record directories, its folder name.
type Kind string

const (
	KindMeta                 Kind = "meta"
	KindBusinessRequirement  Kind = "business_requirements"
	KindTechnicalRequirement Kind = "technical_requirements"
	KindPersona              Kind = "personas"
	KindContact              Kind = "contacts"
	KindTerm                 Kind = "terms"
	KindKnownGap             Kind = "known_gaps"
)

// Fixed file locations relative to the spec root.
const (
	MetaFile = "meta.toml"
	SLAFile  = "sla/sla.md"
)

// RecordKinds lists the record directories in load order.
var RecordKinds = []Kind{
	KindTerm,
	KindContact,
	KindTechnicalRequirement,
	KindKnownGap,
	KindPersona,
	KindBusinessRequirement,
}
