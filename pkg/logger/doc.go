// Package logger provides a thin factory around log/slog with built-in
// redaction of sensitive attribute values.
//
// New returns a *slog.Logger configured by Option functions:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   • WithLevel – minimum level
//   • WithOutput – destination writer
//   • WithAttr – static attributes attached to every record
//   • WithRedactKeys – attribute keys whose string values are masked
//   • WithMaskOptions – how redacted values are masked
//
// # Redaction
//
// Redaction is done by RedactHandler, a slog.Handler decorator. Any string
// attribute whose key matches one of the configured keys (case-insensitive,
// also inside groups) is passed through textutil.MaskString before it reaches
// the underlying handler:
//
//	log := logger.New(logger.WithRedactKeys("card_number", "api_key"))
//	log.Info("charge", slog.String("card_number", "4111111111111111"))
//	// card_number=4111********1111
//
// The Masked helper masks a single attribute explicitly regardless of the
// configured keys.
//
// # Usage
//
//	import "github.com/dmitrymomot/textkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("importer")),
//	    logger.WithRedactKeys("email"),
//	)
//	logger.SetAsDefault(log)
//
// # Error Handling
//
// Error and Errors return attributes only for non-nil errors so they can be
// passed unconditionally:
//
//	log.Info("operation finished", logger.Error(err))
package logger
