package config

// Stitchfile represents the structure of the stitch.yaml manifest.
type Stitchfile struct {
	Version     string    `yaml:"version"`
	Root        string    `yaml:"root"`
	Listen      string    `yaml:"listen"`
	Minify      *bool     `yaml:"minify"`
	AutoRefresh *bool     `yaml:"autoRefresh"`
	Packs       []PackDTO `yaml:"packs"`
}

// PackDTO represents one pack definition in the manifest. The file order is
// the concatenation order of the built artifact.
type PackDTO struct {
	Path        string   `yaml:"path"`
	Kind        string   `yaml:"kind"`
	Files       []string `yaml:"files"`
	Minify      *bool    `yaml:"minify"`
	AutoRefresh *bool    `yaml:"autoRefresh"`
}
