package config

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Images  ImagesConfig  `mapstructure:"images"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB API connection details
type TMDBConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	Language string `mapstructure:"language"`
}

// ImagesConfig holds the image CDN settings
type ImagesConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	PosterSize string `mapstructure:"poster_size"`
}

// FilterConfig contains named filter presets
type FilterConfig struct {
	Presets map[string]PresetConfig `mapstructure:"presets"`
}

// PresetConfig is a single named filter expression
type PresetConfig struct {
	Expression  string `mapstructure:"expression"`
	Description string `mapstructure:"description"`
}

// Expressions returns the preset expressions keyed by name
func (f FilterConfig) Expressions() map[string]string {
	expressions := make(map[string]string, len(f.Presets))
	for name, preset := range f.Presets {
		expressions[name] = preset.Expression
	}
	return expressions
}

// DisplayConfig contains console output settings
type DisplayConfig struct {
	Limit      int `mapstructure:"limit"`
	TitleWidth int `mapstructure:"title_width"`
	CastLimit  int `mapstructure:"cast_limit"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
