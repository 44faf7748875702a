// Package model provides the record types of a specification tree.
//
// This package contains type definitions only. All other internal packages
// import model; model imports nothing internal.
//
// Key design constraints:
//   - Business requirement ids are HierarchicalID values, never plain strings
//   - Known gap requirement ids stay plain strings (they may name ids that do not parse)
//   - Numeric record ids (contacts, personas) are uint8
//   - All TOML/YAML keys use snake_case
package model
