// Package environment names the environment an application runs in
// (development, staging, production) and carries it through context.Context,
// HTTP requests and structured logs.
//
// Parse turns configuration input into an Environment and rejects unknown
// names with ErrInvalidEnvironment. Environment implements the guard.Enum
// contract, so values can also be checked directly with guard.NotInEnum.
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	handler = environment.Middleware(env)(handler)
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// LoggerExtractor returns a logger.ContextExtractor compatible function that
// adds the "env" attribute to every record logged with a request context.
package environment
