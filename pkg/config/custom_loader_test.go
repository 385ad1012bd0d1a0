package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/kit/pkg/config"
)

type CustomEnvConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestBool      bool     `env:"TEST_CUSTOM_BOOL"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	TestPriority  string   `env:"TEST_PRIORITY"`
}

type OverrideConfig struct {
	TestUnique    string `env:"TEST_OVERRIDE_UNIQUE"`
	TestOverriden string `env:"TEST_CUSTOM_STRING"`
}

type RequiredEnvConfig struct {
	Required string `env:"OVERRIDDEN_REQUIRED,required"`
}

const customEnv = `TEST_CUSTOM_STRING=custom_value
TEST_CUSTOM_INT=1234
TEST_CUSTOM_BOOL=true
TEST_CUSTOM_ARRAY=item1,item2,item3
TEST_CUSTOM_WITH_QUOTES="quoted value"
TEST_PRIORITY=custom_file_value
`

const overrideEnv = `TEST_CUSTOM_STRING=override_value
TEST_CUSTOM_INT=9999
TEST_PRIORITY=override_value
TEST_OVERRIDE_UNIQUE=unique_to_override
`

var customKeys = []string{
	"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_BOOL", "TEST_CUSTOM_ARRAY",
	"TEST_CUSTOM_WITH_QUOTES", "TEST_PRIORITY", "TEST_OVERRIDE_UNIQUE", "OVERRIDDEN_REQUIRED",
}

// cleanEnv unsets keys for the duration of the test and restores them afterwards.
func cleanEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func envFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnv_CustomPath(t *testing.T) {
	cleanEnv(t, customKeys...)

	require.NoError(t, config.LoadEnv(envFile(t, ".env.custom", customEnv)))

	var cfg CustomEnvConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom_value", cfg.TestString)
	assert.Equal(t, 1234, cfg.TestInt)
	assert.True(t, cfg.TestBool)
	assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
	assert.Equal(t, "quoted value", cfg.TestWithQuote)
	assert.Equal(t, "custom_file_value", cfg.TestPriority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	cleanEnv(t, customKeys...)

	err := config.LoadEnv(envFile(t, ".env.custom", customEnv), envFile(t, ".env.override", overrideEnv))
	require.NoError(t, err)

	var customCfg CustomEnvConfig
	require.NoError(t, config.Load(&customCfg))
	assert.Equal(t, "override_value", customCfg.TestString)
	assert.Equal(t, 9999, customCfg.TestInt)
	assert.Equal(t, "override_value", customCfg.TestPriority)
	assert.True(t, customCfg.TestBool)

	var overrideCfg OverrideConfig
	require.NoError(t, config.Load(&overrideCfg))
	assert.Equal(t, "unique_to_override", overrideCfg.TestUnique)
	assert.Equal(t, "override_value", overrideCfg.TestOverriden)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	cleanEnv(t, customKeys...)

	path := envFile(t, ".env.custom", customEnv)
	assert.NotPanics(t, func() { config.MustLoadEnv(path) })
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
}

func TestForceReloadConfig(t *testing.T) {
	cleanEnv(t, customKeys...)

	var cfg RequiredEnvConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("OVERRIDDEN_REQUIRED", "required_value")

	var reloaded RequiredEnvConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "required_value", reloaded.Required)

	t.Setenv("OVERRIDDEN_REQUIRED", "changed")
	var cached RequiredEnvConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, "required_value", cached.Required)

	assert.ErrorIs(t, config.ForceReloadConfig[RequiredEnvConfig](nil), config.ErrNilPointer)
}

func TestLoadEnv_DefaultBehavior(t *testing.T) {
	t.Chdir(t.TempDir())
	cleanEnv(t, "DEFAULT_ENV_VAR")

	require.NoError(t, os.WriteFile(".env", []byte("DEFAULT_ENV_VAR=default_from_temp"), 0o600))
	require.NoError(t, config.LoadEnv())
	assert.Equal(t, "default_from_temp", os.Getenv("DEFAULT_ENV_VAR"))
}
