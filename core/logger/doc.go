// Package logger builds slog loggers and provides attribute helpers so log
// keys stay consistent across packages.
//
//	log := logger.New(
//		logger.WithProduction("viewkit"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("template engine configured",
//		logger.Component("view"),
//		logger.Key("roots", roots),
//	)
//
// WithDevelopment gives debug-level text output, WithProduction info-level
// JSON. Both tag records with service and env attributes. Nop returns a
// logger that discards everything and is the default for library components.
//
// Helpers that may receive an absent value (Error with nil, RequestID with "",
// Key with nil) return the empty slog.Attr, which handlers skip:
//
//	log.Warn("render failed", logger.Error(err), logger.Template(name))
package logger
