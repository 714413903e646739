package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardian/pkg/environment"
	"github.com/dmitrymomot/guardian/pkg/guard"
	"github.com/dmitrymomot/guardian/pkg/logger"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	log.Debug("hidden")
	log.Info("product created", slog.String("name", "Wireless Mouse"))

	entry := decodeEntry(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "product created", entry["msg"])
	assert.Equal(t, "Wireless Mouse", entry["name"])
}

func TestNew_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []logger.Option
		wantJSON bool
	}{
		{name: "text formatter", opts: []logger.Option{logger.WithTextFormatter()}},
		{name: "json formatter wins when last", opts: []logger.Option{logger.WithTextFormatter(), logger.WithJSONFormatter()}, wantJSON: true},
		{name: "explicit text format", opts: []logger.Option{logger.WithFormat(logger.FormatText)}},
		{name: "explicit json format", opts: []logger.Option{logger.WithFormat(logger.FormatJSON)}, wantJSON: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			logger.New(append(tt.opts, logger.WithOutput(buf))...).Info("hello")
			if tt.wantJSON {
				assert.Equal(t, "hello", decodeEntry(t, buf)["msg"])
				return
			}
			assert.Contains(t, buf.String(), "msg=hello")
		})
	}
}

func TestWithFormat_RejectsUnknown(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		gerr, ok := guard.As(err)
		require.True(t, ok)
		assert.Equal(t, "format", gerr.Param)
		assert.Equal(t, logger.Format("xml"), gerr.Value)
	}()
	logger.New(logger.WithFormat(logger.Format("xml")))
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env       environment.Environment
		wantEnv   string
		wantJSON  bool
		wantDebug bool
	}{
		{env: environment.Production, wantEnv: "production", wantJSON: true},
		{env: environment.Staging, wantEnv: "staging", wantJSON: true},
		{env: environment.Development, wantEnv: "development", wantDebug: true},
		{env: environment.Environment("qa"), wantEnv: "development", wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(tt.env, "guardian-api"),
				logger.WithOutput(buf),
			)

			log.Debug("debug")
			if tt.wantDebug {
				assert.Contains(t, buf.String(), "level=DEBUG")
			} else {
				assert.Empty(t, buf.String())
			}
			buf.Reset()

			log.Info("started")
			if tt.wantJSON {
				entry := decodeEntry(t, buf)
				assert.Equal(t, tt.wantEnv, entry["env"])
				assert.Equal(t, "guardian-api", entry["service"])
				return
			}
			assert.Contains(t, buf.String(), "env="+tt.wantEnv)
			assert.Contains(t, buf.String(), "service=guardian-api")
		})
	}
}

func TestPreset_EmptyServiceIsIgnored(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger.New(logger.WithProduction(""), logger.WithOutput(buf)).Info("msg")

	entry := decodeEntry(t, buf)
	assert.NotContains(t, entry, "service")
	assert.NotContains(t, entry, "env")
}

func TestWithAttr(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithAttr(slog.String("component", "catalog")),
		logger.WithAttr(),
	)
	log.Info("msg")
	assert.Equal(t, "catalog", decodeEntry(t, buf)["component"])
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decodeEntry(t, buf)["msg"])
}
