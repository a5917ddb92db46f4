// Package logger provides slog logger construction and typed attribute helpers.
//
// The package favors structured logging with consistent attribute keys across
// the codebase. Attribute helpers return an empty slog.Attr for nil inputs,
// so call sites never need explicit nil checks:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//	)
//
//	log.Info("checkout submitted",
//		logger.Component("checkout"),
//		logger.Count("items", 3),
//		logger.Error(err), // no-op attr when err is nil
//	)
package logger
