package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig          `mapstructure:"ui"`
	Log     LogConfig         `mapstructure:"log"`
	Palette map[string]string `mapstructure:"palette"`
}

// UIConfig holds keypad geometry and terminal options.
type UIConfig struct {
	ButtonWidth  int  `mapstructure:"button_width"`
	ButtonHeight int  `mapstructure:"button_height"`
	ColumnGap    int  `mapstructure:"column_gap"`
	RowGap       int  `mapstructure:"row_gap"`
	Mouse        bool `mapstructure:"mouse"`
	AltScreen    bool `mapstructure:"alt_screen"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// Path returns the config file location: JASKCALC_CONFIG or
// ~/.config/jaskcalc/config.toml.
func Path() string {
	if p := os.Getenv("JASKCALC_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
// A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.button_width", 7)
	v.SetDefault("ui.button_height", 3)
	v.SetDefault("ui.column_gap", 1)
	v.SetDefault("ui.row_gap", 1)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("JASKCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects geometry the keypad cannot draw.
func (c Config) Validate() error {
	if c.UI.ButtonWidth <= 0 || c.UI.ButtonHeight <= 0 {
		return fmt.Errorf("config: button size must be positive, got %dx%d", c.UI.ButtonWidth, c.UI.ButtonHeight)
	}
	if c.UI.ColumnGap < 0 || c.UI.RowGap < 0 {
		return fmt.Errorf("config: gaps must not be negative, got column %d row %d", c.UI.ColumnGap, c.UI.RowGap)
	}
	return nil
}
