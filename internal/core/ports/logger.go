package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(err error)
}
