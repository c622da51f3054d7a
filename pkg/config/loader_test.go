package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/config"
	"github.com/dmitrymomot/validators/pkg/policy"
)

type numberSettings struct {
	Negative policy.Policy `env:"CFG_TEST_NUMBER_NEGATIVE"`
	Zero     policy.Policy `env:"CFG_TEST_NUMBER_ZERO" envDefault:"disallow"`
}

type cachedSettings struct {
	Port policy.Policy `env:"CFG_TEST_CACHED_PORT"`
}

type countrySettings struct {
	Countries []string `env:"CFG_TEST_COUNTRIES" envSeparator:","`
}

type requiredSettings struct {
	Required string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CFG_TEST_NUMBER_NEGATIVE", "must")
	t.Setenv("CFG_TEST_NUMBER_ZERO", "NOT_ALLOW")

	var cfg numberSettings
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, policy.Must, cfg.Negative)
	assert.Equal(t, policy.Disallow, cfg.Zero)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("CFG_TEST_COUNTRIES")

	var cfg countrySettings
	require.NoError(t, config.Load(&cfg))
	assert.Empty(t, cfg.Countries)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("CFG_TEST_CACHED_PORT", "sometimes")

	var cfg cachedSettings
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")

	var cfg requiredSettings
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("CFG_TEST_CACHED_PORT", "must")

	var first cachedSettings
	require.NoError(t, config.Load(&first))

	t.Setenv("CFG_TEST_CACHED_PORT", "disallow")

	var second cachedSettings
	require.NoError(t, config.Load(&second))
	assert.Equal(t, policy.Must, second.Port, "second load should be served from cache")

	config.ResetCache()

	var third cachedSettings
	require.NoError(t, config.Load(&third))
	assert.Equal(t, policy.Disallow, third.Port)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *numberSettings
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("CFG_TEST_DOTENV_VALUE")
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_DOTENV_VALUE") })

	path := writeFile(t, "test.env", "CFG_TEST_DOTENV_VALUE=from_file\n")
	require.NoError(t, config.LoadEnv(path))
	assert.Equal(t, "from_file", os.Getenv("CFG_TEST_DOTENV_VALUE"))

	err := config.LoadEnv(path + ".missing")
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("CFG_TEST_REQUIRED")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.Panics(t, func() {
		var cfg requiredSettings
		config.MustLoad(&cfg)
	})
}
