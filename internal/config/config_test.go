package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvLogPretty, EnvEpsilon, EnvSnap, EnvDemos} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 1e-9, cfg.Epsilon)
	assert.Equal(t, 1e-12, cfg.Snap)
	assert.Equal(t, AllDemos, cfg.Demos)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogPretty, "false")
	t.Setenv(EnvEpsilon, "1e-6")
	t.Setenv(EnvSnap, "0")
	t.Setenv(EnvDemos, " spin, dice ,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.Equal(t, 0.0, cfg.Snap)
	assert.Equal(t, []string{DemoSpin, DemoDice}, cfg.Demos)
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name, key, value string
	}{
		{"level", EnvLogLevel, "verbose"},
		{"pretty", EnvLogPretty, "sometimes"},
		{"epsilon not a number", EnvEpsilon, "tiny"},
		{"negative epsilon", EnvEpsilon, "-1"},
		{"NaN epsilon", EnvEpsilon, "NaN"},
		{"infinite snap", EnvSnap, "+Inf"},
		{"unknown demo", EnvDemos, "spin,dijkstra"},
		{"no demos", EnvDemos, ","},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := FromEnv()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseDemos(t *testing.T) {
	assert.Equal(t, AllDemos, ParseDemos("all"))
	assert.Equal(t, []string{"spin"}, ParseDemos("SPIN"))
	assert.Nil(t, ParseDemos(" , "))
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv(EnvDemos))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDemos+"=polarisation\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv(EnvDemos)
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{DemoPolarisation}, cfg.Demos)
}

func TestLoad_DotEnv(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		write   bool
		wantErr bool
	}{
		{name: "missing file", write: false},
		{name: "malformed file", content: "QSPIN-DEMOS=spin\n", write: true, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			if tc.write {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(tc.content), 0o600))
			}
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			t.Cleanup(func() { _ = os.Chdir(wd) })

			cfg, err := Load()
			if tc.wantErr {
				require.Error(t, err)
				require.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AllDemos, cfg.Demos)
		})
	}
}
