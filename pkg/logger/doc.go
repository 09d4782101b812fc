// Package logger builds *slog.Logger instances with functional options and
// keeps attribute names consistent across the module.
//
// New wraps a text or JSON handler in LogHandlerDecorator, which runs the
// registered ContextExtractor callbacks for every record so request-scoped
// values such as the request id and the locale end up in each line without
// being passed around:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "restkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// NewFromConfig does the same from an env-tagged Config loaded with
// pkg/config.
//
// Attribute helpers (Error, RequestID, Status, ErrorID, ErrorCode, ...) return
// empty attributes for empty input, so they can be passed unconditionally:
//
//	log.LogAttrs(ctx, slog.LevelError, msg.Log(),
//		logger.Error(err),
//		logger.Status(msg.Status),
//		logger.ErrorID(msg.ID),
//	)
package logger
