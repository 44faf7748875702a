// Package schema checks a spec tree beyond what loading requires.
//
// Two passes are available:
//
//   - CheckRecord unifies each decoded record with the CUE definition for
//     its kind, reporting missing required fields and mistyped values. These
//     are the definitions spec.Load enforces; the checker reports every
//     mismatch across the tree where Load stops at the first.
//   - CheckReferences walks a loaded spec and reports every dangling
//     contact, persona or business requirement reference, and duplicate
//     business requirement ids.
//
// Both passes collect all problems instead of stopping at the first.
package schema
