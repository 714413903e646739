package logger_test

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardian/pkg/guard"
	"github.com/dmitrymomot/guardian/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestGuard(t *testing.T) {
	_, err := guard.OutOfRange("age", 10, 18, 120)
	attr := logger.Guard(fmt.Errorf("register: %w", err))
	require.Equal(t, "guard", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	got := map[string]string{}
	for _, a := range attr.Value.Group() {
		got[a.Key] = a.Value.String()
	}
	assert.Equal(t, map[string]string{
		"param":   "age",
		"kind":    "range",
		"rule":    "out_of_range",
		"message": "value must be between 18 and 120",
	}, got)

	assert.True(t, logger.Guard(errors.New("boom")).Equal(slog.Attr{}))
	assert.True(t, logger.Guard(nil).Equal(slog.Attr{}))
}

func TestRequestAttrs(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))

	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "/api/products", logger.Path("/api/products").Value.String())
	assert.Equal(t, int64(201), logger.Status(201).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "handler", logger.Handler("create").Key)
	assert.Equal(t, "component", logger.Component("api").Key)
}
