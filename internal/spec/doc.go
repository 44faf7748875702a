// Package spec loads a specification tree from disk into a read-only Spec.
//
// Layout of a specification root:
//
//	meta.toml                  document metadata (required)
//	sla/sla.md                 SLA text, included verbatim (required)
//	business_requirements/     one record per file
//	technical_requirements/
//	personas/
//	contacts/
//	terms/
//	known_gaps/
//
// Record directories are optional; a missing one loads as an empty
// collection. Every record is checked against the CUE definition for its
// kind (records.cue) before it is decoded, so a missing required field is a
// parse error rather than a zero value. Records are TOML (.toml) or YAML (.yaml, .yml). Entries are
// read in file-name order so the load order is stable.
//
// The loaded Spec is never mutated. Lookups are linear scans.
package spec
