package ports

// Minifier is a pure content transformation applied per file during a
// minifying build. Implementations exist per pack kind.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	Minify(src []byte) []byte
}
