// Package log provides structured logging for helper.
//
// Package: log
// Title: Helper Structured Logging
// Description: Leveled logger with persistent context fields, request IDs,
//              JSON / text / console output and operation timers. Integrates
//              with the structured error type so logged errors carry their
//              code, severity and operation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Removed async buffering and logfmt output
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "fleet",
//	})
//
//	logger.WithRequestID(id).Info("request sent", log.Fields{"endpoint": "robots"})
//
//	timer := logger.StartTimer("fetch robots")
//	defer timer.Stop()
//
// Loggers are immutable: every With* method returns a modified copy, so a
// logger can be shared between goroutines.
package log
