// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors, and attributes injected from context.Context.
//
// New creates a logger from Option values; NewFromConfig does the same from a
// Config read from the environment (VALID_LOG_LEVEL and VALID_LOG_FORMAT).
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format. When extractors are registered the handler is wrapped so every
// ContextExtractor runs before a record is written.
//
// Helper constructors in attr.go (Component, Strategy, Status, Tag,
// InvocationID, RunID, Error and friends) keep attribute names consistent
// across the validation packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextExtractors(logger.InvocationIDExtractor),
//	)
//
//	ctx = logger.WithInvocationID(ctx, 42)
//	log.DebugContext(ctx, "value validated",
//	    logger.Tag("email"),
//	    logger.Status("valid"),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check.
package logger
