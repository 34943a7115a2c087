package domain

import "errors"

var (
	// ErrPackLocked is returned when a path is added to a pack after its
	// file list was locked by a content request.
	ErrPackLocked = errors.New("pack is locked, no further paths can be added")

	// ErrEmptyPath is returned when an empty logical path is added to a pack.
	ErrEmptyPath = errors.New("logical path is empty")

	// ErrPathNotRooted is returned when a logical path does not start with the
	// root-relative marker "/".
	ErrPathNotRooted = errors.New("logical path must start with '/'")

	// ErrDuplicatePath is returned when a logical path is added to a pack twice.
	ErrDuplicatePath = errors.New("duplicate logical path")

	// ErrPathEscapesRoot is returned when a logical path resolves outside the
	// asset root directory.
	ErrPathEscapesRoot = errors.New("logical path escapes the asset root")

	// ErrUnknownKind is returned when a pack declares an unsupported kind.
	ErrUnknownKind = errors.New("unknown pack kind, expected 'css' or 'js'")

	// ErrFileRead is returned when a constituent asset file cannot be read.
	ErrFileRead = errors.New("failed to read asset file")

	// ErrFileStat is returned when a constituent asset file cannot be stat'd.
	ErrFileStat = errors.New("failed to stat asset file")

	// ErrManifestNotFound is returned when no stitch.yaml can be located.
	ErrManifestNotFound = errors.New("could not find stitch.yaml")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = errors.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = errors.New("failed to parse manifest")

	// ErrNoPacks is returned when a manifest declares no packs.
	ErrNoPacks = errors.New("manifest declares no packs")

	// ErrDuplicatePack is returned when two packs share the same logical path.
	ErrDuplicatePack = errors.New("duplicate pack path")

	// ErrInvalidPackPath is returned when a pack's own logical path is malformed.
	ErrInvalidPackPath = errors.New("pack path must start with '/'")

	// ErrCheckFailed is returned when at least one declared pack cannot be built.
	ErrCheckFailed = errors.New("one or more packs failed to build")
)
