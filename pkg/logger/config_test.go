package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/logger"
)

func TestWithEnvironment(t *testing.T) {
	t.Run("development uses text at debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("dev", "registry"),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "service=registry")
		assert.Contains(t, output, "env=development")
	})

	t.Run("production uses json at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment("prod", "registry"),
			logger.WithOutput(buf),
		)
		log.Debug("hidden")
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "registry", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("staging", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithEnvironment(logger.EnvStaging, "registry"),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, logger.EnvStaging, entry["env"])
	})
}

func TestWithConfig(t *testing.T) {
	var cfg logger.Config
	require.NoError(t, cfg.Level.UnmarshalText([]byte("debug")))
	require.NoError(t, cfg.Format.UnmarshalText([]byte("TEXT")))
	cfg.Service = "registry"
	cfg.Env = "test"

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithConfig(cfg), logger.WithOutput(buf))
	log.Debug("msg")

	output := buf.String()
	assert.Contains(t, output, "level=DEBUG")
	assert.Contains(t, output, "service=registry")
	assert.Contains(t, output, "env=test")
}

func TestWithConfig_ZeroValue(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithConfig(logger.Config{}), logger.WithOutput(buf))
	log.Debug("hidden")
	log.Info("msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, slog.LevelInfo.String(), entry["level"])
}

func TestFormatUnmarshalText(t *testing.T) {
	var f logger.Format
	require.NoError(t, f.UnmarshalText([]byte("Json")))
	assert.Equal(t, logger.FormatJSON, f)

	err := f.UnmarshalText([]byte("xml"))
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	assert.Equal(t, logger.FormatJSON, f)
}
