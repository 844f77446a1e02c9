package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"sqlite_path": "/tmp/mentor.db",
		"model": "gemini-2.5-pro",
		"log_level": "debug",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/mentor.db", cfg.SQLitePath)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("DATABASE_URL", "postgres://localhost/mentor")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ALLOWED_ORIGIN", "http://localhost:5173")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "postgres://localhost/mentor", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.True(t, cfg.DBConfig().UsesPostgres())
}

func TestFromEnv_BadPort(t *testing.T) {
	t.Setenv("PORT", "eighty")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "PORT must be an integer")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"valid", Config{Port: 8080, DatabaseURL: "postgresql://u@h/db", LogLevel: "error"}, ""},
		{"negative port", Config{Port: -1}, "'port'"},
		{"port too large", Config{Port: 70000}, "'port'"},
		{"sqlite url", Config{DatabaseURL: "sqlite://mentor.db"}, "'database_url'"},
		{"unknown level", Config{LogLevel: "loud"}, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:       9000,
		SQLitePath: "default.db",
		Model:      "gemini-2.5-flash",
		LogLevel:   "info",
	}

	partial := Config{
		Model:  "gemini-2.5-pro",
		APIKey: "file-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "gemini-2.5-pro", merged.Model)
	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "default.db", merged.SQLitePath)
	assert.Equal(t, "info", merged.LogLevel)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{APIKey: "k"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "k", merged.APIKey)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.False(t, merged.Verbose)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (&Config{}).Level())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "WARNING"}).Level())
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "error", Verbose: true}).Level())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "bogus"}).Level())
}
