// Package logging provides concrete implementations of the inspect.Logger
// interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr, or any io.Writer
//   - NullLogger: discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
