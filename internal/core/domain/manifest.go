package domain

// ManifestFileName is the manifest file stitch searches for.
const ManifestFileName = "stitch.yaml"

// Manifest is the validated, fully resolved configuration for one stitch
// process: the asset root, the listen address, the build defaults and the
// declared packs in manifest order.
type Manifest struct {
	Root   string
	Listen string

	// Defaults applied to every pack unless overridden per pack.
	Minify      bool
	AutoRefresh bool

	Packs []*Pack

	// Config holds the effective BuildConfig per pack identity.
	Config map[string]BuildConfig
}

// ConfigFor returns the effective build configuration for a pack identity,
// falling back to the manifest defaults for unknown identities.
func (m *Manifest) ConfigFor(path string) BuildConfig {
	if cfg, ok := m.Config[path]; ok {
		return cfg
	}
	return BuildConfig{Minify: m.Minify, AutoRefresh: m.AutoRefresh}
}
