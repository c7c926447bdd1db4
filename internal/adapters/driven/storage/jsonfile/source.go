package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
	"github.com/custodia-labs/profdir/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ProfileSource = (*Source)(nil)

// Source loads profiles from a JSON file.
type Source struct {
	path string
}

// NewSource creates a source for the given file.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Location returns the file path.
func (s *Source) Location() string {
	return s.path
}

// Dir returns the directory holding the file. Relative image
// references resolve against it.
func (s *Source) Dir() string {
	return filepath.Dir(s.path)
}

// Load reads and decodes the whole file.
func (s *Source) Load(ctx context.Context) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, s.path, err)
	}

	profiles := make([]domain.Profile, len(records))
	for i, r := range records {
		profiles[i] = r.ToDomain()
	}
	logger.Debug("Decoded %d profiles from %s", len(profiles), s.path)
	return profiles, nil
}

// document is the object form of the file.
type document struct {
	Profiles []Record `json:"profiles"`
}

// Decode parses either a bare array or an object with a "profiles" key.
func Decode(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Profiles, nil
}

// Encode writes profiles in the object form, indented.
func Encode(profiles []domain.Profile) ([]byte, error) {
	doc := document{Profiles: make([]Record, len(profiles))}
	for i := range profiles {
		doc.Profiles[i] = FromDomain(profiles[i])
	}
	return json.MarshalIndent(doc, "", "  ")
}
