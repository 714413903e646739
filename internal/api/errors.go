package api

import "net/http"

// HTTPError is an error with an HTTP status code and a stable key.
type HTTPError struct {
	Code    int
	Key     string
	Message string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Key + ": " + e.Message
	}
	return e.Key
}

// WithMessage returns a copy of e carrying msg.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

var (
	ErrBadRequest = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound   = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrInternal   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
)
