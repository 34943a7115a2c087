// Package fs implements the filesystem-backed adapters: the asset file
// source and the logical path resolver.
package fs

import (
	"os"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSource = (*Source)(nil)

// Source implements ports.FileSource against the local filesystem.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ReadContent returns the full content of the file at path.
func (s *Source) ReadContent(path string) ([]byte, error) {
	content, err := os.ReadFile(path) //nolint:gosec // Paths come from the validated manifest
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileRead.Error()), "path", path)
	}
	return content, nil
}

// ModTime returns the last-write timestamp of the file at path.
func (s *Source) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(err, domain.ErrFileStat.Error()), "path", path)
	}
	return info.ModTime(), nil
}
