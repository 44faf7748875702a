package spec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// isRecordFile reports whether name is a record file the loader decodes.
func isRecordFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// readFile reads a record file and NFC-normalises its content.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeIO, Path: path, Err: err}
	}
	return norm.NFC.Bytes(data), nil
}

// decodeRecord reads path, checks the record against the definition for
// kind and decodes it into out. A record that misses a required field or
// mistypes one fails with ErrCodeParse, like any other malformed record.
func decodeRecord(shapes *Shapes, kind Kind, path string, out any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if err := decodeBytes(path, data, &fields); err != nil {
		return err
	}
	problems, err := shapes.Check(kind, fields)
	if err != nil {
		return &LoadError{Code: ErrCodeParse, Path: path, Err: err}
	}
	if len(problems) > 0 {
		return &LoadError{Code: ErrCodeParse, Path: path, Err: problems}
	}

	return decodeBytes(path, data, out)
}

func decodeBytes(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(out); err != nil {
			return &LoadError{Code: ErrCodeParse, Path: path, Err: err}
		}
		return nil
	case ".toml":
		if err := toml.Unmarshal(data, out); err != nil {
			loadErr := &LoadError{Code: ErrCodeParse, Path: path, Err: err}
			var decErr *toml.DecodeError
			if errors.As(err, &decErr) {
				loadErr.Line, _ = decErr.Position()
			}
			return loadErr
		}
		return nil
	default:
		return &LoadError{Code: ErrCodeParse, Path: path, Err: fmt.Errorf("unsupported record format %q", filepath.Ext(path))}
	}
}

// DecodeMap decodes a record file into a generic map, for schema checks
// that need to see fields as written.
func DecodeMap(path string) (map[string]any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	record := map[string]any{}
	if err := decodeBytes(path, data, &record); err != nil {
		return nil, err
	}
	return record, nil
}
