// Package log provides the logging abstraction used across muse.
//
// The Logger interface can be implemented by any logging library; a zerolog
// adapter is provided for normal use and a no-op logger for tests and for
// quiet library embedding:
//
//	logger := log.NewZerologAdapter()
//	quiet := log.NewNoopLogger()
//
// Implement the interface to plug in existing logging infrastructure:
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
