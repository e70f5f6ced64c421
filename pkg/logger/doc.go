// Package logger builds the application's slog.Logger.
//
// The default output is JSON on stdout at info level. Options switch to
// text output for development, raise or lower the level, and attach a
// Sentry destination that receives warnings and errors alongside the
// primary output:
//
//	log := logger.New(
//	    logger.WithSentry(os.Getenv("SENTRY_DSN"), "production"),
//	    logger.WithContextExtractors(requestID),
//	)
//
// Context extractors run on every log call, which is what makes
// request-scoped attributes like request IDs come out right: the value
// is read from the context at emit time, not frozen at logger
// construction.
package logger
