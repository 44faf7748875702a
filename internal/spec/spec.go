package spec

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/specdoc/internal/model"
)

// Spec holds every record of a specification tree.
//
// Slices keep load order (file-name order within each directory).
// Consumers re-sort as needed and must not mutate the Spec.
type Spec struct {
	Root                  string
	Meta                  model.Meta
	SLA                   string
	Terms                 []model.Term
	Contacts              []model.Contact
	TechnicalRequirements []model.TechnicalRequirement
	KnownGaps             []model.KnownGap
	Personas              []model.Persona
	BusinessRequirements  []model.BusinessRequirement
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for load diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load reads the specification tree rooted at root.
//
// A missing meta.toml or sla/sla.md fails with a *LoadError coded ErrCodeIO.
// A malformed record, including one missing a required field, fails with
// ErrCodeParse. A missing record directory is not an error. The SLA text is
// kept byte for byte; record files are NFC-normalised before decoding.
func Load(root string, opts ...LoadOption) (*Spec, error) {
	cfg := &loadConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger

	info, err := os.Stat(root)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeIO, Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotDir, Path: root, Err: errors.New("not a directory")}
	}

	shapes, err := NewShapes()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Path: root, Err: err}
	}

	s := &Spec{Root: root}

	metaPath := filepath.Join(root, MetaFile)
	if err := decodeRecord(shapes, KindMeta, metaPath, &s.Meta); err != nil {
		return nil, err
	}
	logger.Debug("loaded metadata", "path", metaPath, "version", s.Meta.Version)

	slaPath := filepath.Join(root, filepath.FromSlash(SLAFile))
	sla, err := os.ReadFile(slaPath)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeIO, Path: slaPath, Err: err}
	}
	s.SLA = string(sla)

	if s.Terms, err = loadDirectory[model.Term](root, KindTerm, shapes, logger); err != nil {
		return nil, err
	}
	if s.Contacts, err = loadDirectory[model.Contact](root, KindContact, shapes, logger); err != nil {
		return nil, err
	}
	if s.TechnicalRequirements, err = loadDirectory[model.TechnicalRequirement](root, KindTechnicalRequirement, shapes, logger); err != nil {
		return nil, err
	}
	if s.KnownGaps, err = loadDirectory[model.KnownGap](root, KindKnownGap, shapes, logger); err != nil {
		return nil, err
	}
	if s.Personas, err = loadDirectory[model.Persona](root, KindPersona, shapes, logger); err != nil {
		return nil, err
	}
	if s.BusinessRequirements, err = loadDirectory[model.BusinessRequirement](root, KindBusinessRequirement, shapes, logger); err != nil {
		return nil, err
	}

	logger.Debug("spec loaded",
		"root", root,
		"business_requirements", len(s.BusinessRequirements),
		"technical_requirements", len(s.TechnicalRequirements),
		"contacts", len(s.Contacts),
	)

	return s, nil
}

// loadDirectory decodes every record file directly inside root/kind.
func loadDirectory[T any](root string, kind Kind, shapes *Shapes, logger *slog.Logger) ([]T, error) {
	dir := filepath.Join(root, string(kind))

	files, err := recordFilesIn(dir, logger)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(files))
	for _, path := range files {
		var record T
		if err := decodeRecord(shapes, kind, path, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	logger.Debug("loaded records", "kind", kind, "count", len(records))
	return records, nil
}

// recordFilesIn lists the record files of dir in file-name order.
// A missing dir yields no files.
func recordFilesIn(dir string, logger *slog.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("record directory missing, treating as empty", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeIO, Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() || !isRecordFile(entry.Name()) {
			logger.Debug("skipping non-record entry", "path", path)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// RecordFile is one file of a spec tree together with its record kind.
type RecordFile struct {
	Kind Kind
	Path string
}

// RecordFiles lists meta.toml followed by every record file, grouped by
// kind in RecordKinds order. Missing directories contribute nothing.
func RecordFiles(root string, logger *slog.Logger) ([]RecordFile, error) {
	if logger == nil {
		logger = slog.Default()
	}

	files := []RecordFile{{Kind: KindMeta, Path: filepath.Join(root, MetaFile)}}
	for _, kind := range RecordKinds {
		paths, err := recordFilesIn(filepath.Join(root, string(kind)), logger)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			files = append(files, RecordFile{Kind: kind, Path: p})
		}
	}
	return files, nil
}

// FindContact returns the contact with the given id.
func (s *Spec) FindContact(id uint8) (*model.Contact, error) {
	for i := range s.Contacts {
		if s.Contacts[i].ID == id {
			return &s.Contacts[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "contact", ID: id}
}

// FindPersona returns the persona with the given id.
func (s *Spec) FindPersona(id uint8) (*model.Persona, error) {
	for i := range s.Personas {
		if s.Personas[i].ID == id {
			return &s.Personas[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "persona", ID: id}
}

// FindTechnicalRequirements returns the technical requirements attached to
// businessID, in load order.
func (s *Spec) FindTechnicalRequirements(businessID model.HierarchicalID) []model.TechnicalRequirement {
	var matches []model.TechnicalRequirement
	for _, tr := range s.TechnicalRequirements {
		if tr.RequirementID.Equal(businessID) {
			matches = append(matches, tr)
		}
	}
	return matches
}

// HasBusinessRequirement reports whether a business requirement with id exists.
func (s *Spec) HasBusinessRequirement(id model.HierarchicalID) bool {
	for _, br := range s.BusinessRequirements {
		if br.ID.Equal(id) {
			return true
		}
	}
	return false
}
