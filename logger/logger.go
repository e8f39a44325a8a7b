package logger

// Logger provides a standardized logging interface for the rest client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., zerolog, logrus, zap,
// standard log) or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - Request/response debugging
// - Bucket hash discovery and migration
// - Rate limit and retry tracking
// - Connection and transport issues
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := rest.New(token, rest.WithLogger(myLogger))
//
//	// Disable logging entirely
//	client := rest.New(token, rest.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
