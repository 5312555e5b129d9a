package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix+"_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, 200000.0, cfg.Steel.Modulus)
	assert.Equal(t, 240.0, cfg.Steel.Fy)
	assert.Equal(t, 620.0, cfg.Steel.Fnt)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	content := `
log:
  level: debug
  format: json
catalog:
  path: ./sections.xlsx
steel:
  fy: 250
  fu: 410
server:
  port: 9000
  shutdown_timeout: 3s
batch:
  workers: 8
`
	path := filepath.Join(t.TempDir(), "steelcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "./sections.xlsx", cfg.Catalog.Path)
	assert.Equal(t, 250.0, cfg.Steel.Fy)
	assert.Equal(t, 410.0, cfg.Steel.Fu)
	assert.Equal(t, 490.0, cfg.Steel.Fexx, "unset keys keep defaults")
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	clearEnv(t)

	t.Setenv("STEELCALC_STEEL_FY", "345")
	t.Setenv("STEELCALC_SERVER_PORT", "3000")
	t.Setenv("STEELCALC_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 345.0, cfg.Steel.Fy)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 240.0, cfg.Steel.Fy)
}

func TestLoad_InvalidFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steel: [fy: 250\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Steel.Fy = 0
	cfg.Server.Port = 70000
	cfg.Batch.Workers = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steel.fy")
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "batch.workers")
}

func TestSteelDefaults(t *testing.T) {
	d := SteelConfig{Modulus: 1, Fy: 2, Fu: 3, Fexx: 4, Fnv: 5, Fnt: 6, PlateFy: 7}.Defaults()
	assert.Equal(t, 1.0, d.Modulus)
	assert.Equal(t, 7.0, d.PlateFy)
}

func TestServerAddress(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Address())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console", ""} {
		logger, err := NewLogger(LogConfig{Level: "warn", Format: format})
		require.NoError(t, err, format)
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	}

	_, err := NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
