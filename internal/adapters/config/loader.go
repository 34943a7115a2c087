// Package config provides the manifest loader for stitch.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultListen is the listen address used when the manifest does not set one.
const DefaultListen = ":8080"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML manifest.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the manifest at path, or searches upward from cwd when path is
// empty, and returns the fully resolved configuration.
func (l *Loader) Load(cwd, path string) (*domain.Manifest, error) {
	configPath := path
	if configPath == "" {
		found, err := l.findManifest(cwd)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	var file Stitchfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown manifest version %q, proceeding as version 1", file.Version))
	}
	if len(file.Packs) == 0 {
		return nil, zerr.With(domain.ErrNoPacks, "manifest", configPath)
	}

	resolver, err := fs.NewResolver(resolveRoot(configPath, file.Root))
	if err != nil {
		return nil, err
	}

	manifest := &domain.Manifest{
		Root:        resolver.Root(),
		Listen:      file.Listen,
		Minify:      boolOr(file.Minify, true),
		AutoRefresh: boolOr(file.AutoRefresh, true),
		Config:      make(map[string]domain.BuildConfig, len(file.Packs)),
	}
	if manifest.Listen == "" {
		manifest.Listen = DefaultListen
	}

	seen := make(map[string]struct{}, len(file.Packs))
	for _, dto := range file.Packs {
		if _, dup := seen[dto.Path]; dup {
			return nil, zerr.With(domain.ErrDuplicatePack, "path", dto.Path)
		}
		seen[dto.Path] = struct{}{}

		kind, err := domain.ParseKind(dto.Kind)
		if err != nil {
			return nil, zerr.With(err, "path", dto.Path)
		}

		pack, err := domain.NewPack(dto.Path, kind, resolver.Resolve)
		if err != nil {
			return nil, err
		}
		if err := pack.AddPaths(dto.Files); err != nil {
			return nil, err
		}

		manifest.Packs = append(manifest.Packs, pack)
		manifest.Config[dto.Path] = domain.BuildConfig{
			Minify:      boolOr(dto.Minify, manifest.Minify),
			AutoRefresh: boolOr(dto.AutoRefresh, manifest.AutoRefresh),
		}
	}

	return manifest, nil
}

// findManifest walks upward from cwd towards the filesystem root looking
// for a stitch.yaml.
func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

// resolveRoot resolves the asset root relative to the manifest's directory.
func resolveRoot(configPath, root string) string {
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(configPath), root)
	}
	return root
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
	}

	return nil
}
