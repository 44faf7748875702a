package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Tree is a spec tree described as relative path -> file content.
//
// Paths use forward slashes, e.g. "business_requirements/1.toml".
type Tree map[string]string

// MinimalMeta is a meta.toml whose owner is contact 1.
const MinimalMeta = `version = 1
date = 2023-04-05
owner_id = 1
description = "Minimal specification."

[contacts]
owners = [1]
`

// MinimalTree returns a tree with metadata, an SLA and a single contact.
// It loads and renders without errors.
func MinimalTree() Tree {
	return Tree{
		"meta.toml":         MinimalMeta,
		"sla/sla.md":        "Best effort.",
		"contacts/ada.toml": "id = 1\nname = \"Ada\"\nemail = \"ada@example.com\"\n",
	}
}

// With returns a copy of the tree with files added or replaced.
func (tr Tree) With(files Tree) Tree {
	out := make(Tree, len(tr)+len(files))
	for k, v := range tr {
		out[k] = v
	}
	for k, v := range files {
		out[k] = v
	}
	return out
}

// Without returns a copy of the tree with the named files removed.
func (tr Tree) Without(paths ...string) Tree {
	out := make(Tree, len(tr))
	for k, v := range tr {
		out[k] = v
	}
	for _, p := range paths {
		delete(out, p)
	}
	return out
}

// Write materialises the tree under a fresh t.TempDir() and returns its root.
func (tr Tree) Write(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range tr {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return root
}
