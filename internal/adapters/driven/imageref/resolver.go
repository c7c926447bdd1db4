// Package imageref resolves profile photo references against the data
// file location.
package imageref

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/profdir/internal/core/domain"
	"github.com/custodia-labs/profdir/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.ImageResolver = (*Resolver)(nil)

// ErrNoImage is returned for an empty reference.
var ErrNoImage = errors.New("no image reference")

const (
	assetsPrefix   = "./assets/"
	relativePrefix = "./"
)

// Resolver maps "./assets/x" to <dataDir>/assets/x and "./x" to
// <dataDir>/x. Any other reference, typically a URL, is returned as is.
// Local files must exist.
type Resolver struct {
	dataDir string
	stat    func(string) (os.FileInfo, error)
}

// NewResolver creates a resolver rooted at the data file's directory.
func NewResolver(dataDir string) *Resolver {
	return &Resolver{dataDir: dataDir, stat: os.Stat}
}

// Resolve implements driven.ImageResolver.
func (r *Resolver) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNoImage
	}

	var local string
	switch {
	case strings.HasPrefix(ref, assetsPrefix):
		local = filepath.Join(r.dataDir, "assets", filepath.FromSlash(strings.TrimPrefix(ref, assetsPrefix)))
	case strings.HasPrefix(ref, relativePrefix):
		local = filepath.Join(r.dataDir, filepath.FromSlash(strings.TrimPrefix(ref, relativePrefix)))
	default:
		return ref, nil
	}

	if _, err := r.stat(local); err != nil {
		return "", fmt.Errorf("image %s: %w", ref, errors.Join(domain.ErrNotFound, err))
	}
	return local, nil
}
