package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var idFormat = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware attaches a request id to the request context and echoes it in
// the response header. A client-supplied id is reused only if Validate
// accepts it; otherwise a UUIDv4 is generated.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, err := Validate(r.Header.Get(Header))
		if err != nil {
			requestID = uuid.New().String()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

// Validate checks a client-supplied request id: 1 to 128 characters drawn
// from letters, digits, '-' and '_'.
func Validate(id string) (string, error) {
	id, err := guard.InvalidLength(Header, id, 1, maxIDLength)
	if err != nil {
		return "", err
	}
	return guard.InvalidFormatRegexp(Header, id, idFormat)
}
