package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/marquee/tmdb"
)

// isolate points every search location at an empty temp dir and clears the
// environment overrides
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, key := range []string{
		"TMDB_API_KEY",
		"MARQUEE_TMDB_API_KEY",
		"MARQUEE_TMDB_LANGUAGE",
		"MARQUEE_LOGGING_LEVEL",
		"MARQUEE_DISPLAY_LIMIT",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, tmdb.DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Empty(t, cfg.TMDB.APIKey)
	assert.Equal(t, tmdb.DefaultImageBaseURL, cfg.Images.BaseURL)
	assert.Equal(t, tmdb.PosterSmall, cfg.Images.PosterSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.Equal(t, 48, cfg.Display.TitleWidth)
	assert.Empty(t, cfg.Filter.Presets)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)

	path := writeConfig(t, dir, `
tmdb:
  api_key: file-key
  language: de-DE
images:
  poster_size: w500
display:
  limit: 5
filter:
  presets:
    acclaimed:
      expression: VoteAverage >= 8
      description: Critically acclaimed
    action:
      expression: hasGenre("Action")
logging:
  level: debug
  format: json
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, "de-DE", cfg.TMDB.Language)
	assert.Equal(t, "w500", cfg.Images.PosterSize)
	assert.Equal(t, 5, cfg.Display.Limit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
	assert.Equal(t, map[string]string{
		"acclaimed": "VoteAverage >= 8",
		"action":    `hasGenre("Action")`,
	}, cfg.Filter.Expressions())
	assert.Equal(t, "Critically acclaimed", cfg.Filter.Presets["acclaimed"].Description)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "tmdb:\n  api_key: found-key\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "found-key", cfg.TMDB.APIKey)
}

func TestLoad_Environment(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "tmdb:\n  api_key: file-key\n")

	t.Run("plain TMDB_API_KEY", func(t *testing.T) {
		t.Setenv("TMDB_API_KEY", "env-key")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	})

	t.Run("prefixed key wins", func(t *testing.T) {
		t.Setenv("TMDB_API_KEY", "env-key")
		t.Setenv("MARQUEE_TMDB_API_KEY", "prefixed-key")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "prefixed-key", cfg.TMDB.APIKey)
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Setenv("MARQUEE_LOGGING_LEVEL", "warn")
		t.Setenv("MARQUEE_DISPLAY_LIMIT", "3")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, 3, cfg.Display.Limit)
	})
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, dir, "tmdb: [unclosed\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeConfig(t, dir, "logging:\n  level: verbose\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			TMDB:    TMDBConfig{BaseURL: tmdb.DefaultBaseURL},
			Images:  ImagesConfig{PosterSize: tmdb.PosterSmall},
			Logging: LoggingConfig{Level: "info", Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid without api key",
			mutate: func(*Config) {},
		},
		{
			name:    "missing base url",
			mutate:  func(c *Config) { c.TMDB.BaseURL = "" },
			wantErr: "tmdb.base_url is required",
		},
		{
			name:    "missing poster size",
			mutate:  func(c *Config) { c.Images.PosterSize = "" },
			wantErr: "images.poster_size is required",
		},
		{
			name:    "negative limit",
			mutate:  func(c *Config) { c.Display.Limit = -1 },
			wantErr: "display.limit must not be negative",
		},
		{
			name: "empty preset",
			mutate: func(c *Config) {
				c.Filter.Presets = map[string]PresetConfig{"blank": {Expression: " "}}
			},
			wantErr: "filter.presets.blank.expression is required",
		},
		{
			name:    "invalid format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
