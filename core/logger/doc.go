// Package logger builds slog loggers and provides attribute helpers.
//
// Create a logger with one of the environment presets and adjust it with options:
//
//	log := logger.New(
//		logger.WithProduction("formcatalog"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
// Attribute helpers keep log keys consistent across packages and return an
// empty slog.Attr for zero values:
//
//	log.Warn("missing translation",
//		logger.Catalog("general"),
//		logger.KeyPath("settings.title"),
//		logger.Locale(catalog.Hindi),
//		logger.Error(err),
//	)
package logger
