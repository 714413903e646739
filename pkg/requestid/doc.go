// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied "X-Request-ID" header when Validate
// accepts it (1 to 128 characters of letters, digits, '-' or '_') and
// generates a UUIDv4 otherwise. The id is stored in the request context and
// echoed in the response header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Validate is built from guard rules, so a rejected id reports which rule
// failed:
//
//	if _, err := requestid.Validate(id); guard.IsRange(err) {
//		// too long or empty
//	}
package requestid
