// Package render turns a loaded spec into a single markdown document.
//
// Section order is fixed:
//
//	title, version, date, owner
//	description
//	known gaps      (only when present)
//	personas        (only when present)
//	requirements    (each with its technical requirements)
//	SLA             (verbatim)
//	glossary        (only when present)
//	contacts        (grouped as in the metadata)
//
// Headings are a run of marker glyphs whose length is the heading depth.
// Requirement headings are id depth + 3 deep, their technical requirement
// sub-headings one deeper.
//
// Every contact and persona reference must resolve. A dangling reference
// fails the whole render with a *spec.NotFoundError and nothing is written.
package render
