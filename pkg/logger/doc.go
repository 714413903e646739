// Package logger builds *slog.Logger instances from functional options and
// decorates their handler so attributes stored in context.Context (request
// id, environment) are added to every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "guardian-api"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	if _, err := guard.NullOrWhiteSpace("name", name); err != nil {
//	    log.WarnContext(ctx, "rejected request", logger.Guard(err))
//	}
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets per environment.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel, WithOutput, WithHandlerOptions: handler settings.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes read from context.
//
// Attribute helpers such as Error, Guard and RequestID return an empty
// slog.Attr for nil input, so they can be passed unconditionally.
package logger
