package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/guardian/pkg/guard"
	"github.com/dmitrymomot/guardian/pkg/logger"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type handlerFunc func(r *http.Request) Response

// wrap renders the Response of fn under the handler name. Failed requests
// are logged with their cause before the response is written. Errors during
// rendering can only be logged: the status line is already written.
func wrap(log *slog.Logger, name string, fn handlerFunc) http.HandlerFunc {
	log = log.With(logger.Handler(name))
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if failed, ok := resp.(errorResponse); ok {
			logFailure(r.Context(), log, failed)
		}
		if err := resp.Render(w, r); err != nil {
			log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}

func logFailure(ctx context.Context, log *slog.Logger, resp errorResponse) {
	switch {
	case resp.status >= http.StatusInternalServerError:
		log.ErrorContext(ctx, "request failed", logger.Error(resp.err))
	case guard.IsArgument(resp.err):
		attrs := []any{logger.Guard(resp.err)}
		if failures := guard.Extract(resp.err); len(failures) > 1 {
			attrs = append(attrs, logger.Errors(failures.Unwrap()...))
		}
		log.WarnContext(ctx, "request rejected", attrs...)
	default:
		log.InfoContext(ctx, "request rejected", logger.Status(resp.status), logger.Error(resp.err))
	}
}

// decode reads a JSON body into v. An empty body is rejected.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrBadRequest.WithMessage("request body is empty")
		}
		return ErrBadRequest.WithMessage("malformed JSON: " + err.Error())
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, parseErr := uuid.Parse(chi.URLParam(r, "id"))
	if err := guard.Condition("id", parseErr == nil, guard.WithMessage("value must be a valid UUID")); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
