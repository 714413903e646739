package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/guardian/internal/catalog"
	"github.com/dmitrymomot/guardian/pkg/guard"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Code  string       `json:"code,omitempty"`
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps each rejected
// parameter to its messages.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	header http.Header
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	for k, v := range j.header {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// errorResponse keeps the cause next to the rendered envelope so the
// handler wrapper can log it.
type errorResponse struct {
	jsonResponse
	err error
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// JSON responds 200 with data.
func JSON(data any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data}}
}

// Created responds 201 with data and a Location header.
func Created(location string, data any) Response {
	return jsonResponse{
		status: http.StatusCreated,
		header: http.Header{"Location": []string{location}},
		body:   JSONResponse{Data: data},
	}
}

func NoContent() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// JSONError maps err to a status code and error envelope:
//
//   - guard failures: 400 "validation_error" with per-parameter details
//   - catalog not-found errors: 404 "not_found"
//   - HTTPError: its own code and key
//   - anything else: 500 with a generic message
func JSONError(err error) Response {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{
		Code:    ErrInternal.Key,
		Message: http.StatusText(status),
	}

	var httpErr HTTPError
	switch {
	case errors.Is(err, catalog.ErrProductNotFound), errors.Is(err, catalog.ErrOrderNotFound):
		status = http.StatusNotFound
		detail.Code = ErrNotFound.Key
		detail.Message = err.Error()
	case guard.IsArgument(err):
		status = http.StatusBadRequest
		detail.Code = "validation_error"
		detail.Message = "request validation failed"
		detail.Details = make(map[string][]string)
		for _, e := range guard.Extract(err) {
			detail.Details[e.Param] = append(detail.Details[e.Param], failureMessage(e))
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail.Code = httpErr.Key
		detail.Message = httpErr.Message
		if detail.Message == "" {
			detail.Message = http.StatusText(httpErr.Code)
		}
	}

	return errorResponse{
		jsonResponse: jsonResponse{
			status: status,
			body:   JSONResponse{Code: detail.Code, Error: detail},
		},
		err: err,
	}
}

func failureMessage(e *guard.Error) string {
	if e.Kind == guard.KindRange {
		return fmt.Sprintf("%s (actual value: %v)", e.Message, e.Value)
	}
	return e.Message
}
