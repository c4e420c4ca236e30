// Package logging provides a minimal logging interface and adapters for the
// telemetry recorder.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the recorder and store backends use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - RecorderLogger with session/component context and store call helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	rec := recorder.New(store, func(o *recorder.Options) { o.Logger = logger })
package logging
