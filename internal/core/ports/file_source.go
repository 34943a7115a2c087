package ports

import "time"

// FileSource provides read access to asset files. The content builder
// depends on this capability instead of touching the filesystem directly so
// tests can substitute counting doubles.
//
//go:generate mockgen -source=file_source.go -destination=mocks/mock_file_source.go -package=mocks
type FileSource interface {
	// ReadContent returns the full content of the file at the given
	// absolute path.
	ReadContent(path string) ([]byte, error)

	// ModTime returns the last-write timestamp of the file at the given
	// absolute path.
	ModTime(path string) (time.Time, error)
}
