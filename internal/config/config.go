// Package config loads Vellum's configuration from a YAML file and
// environment variables.
//
// Configuration problems never stop the editor: Load always returns a
// usable Config, falling back to defaults and reporting what went wrong so
// the caller can log it.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds user interface preferences.
type UIConfig struct {
	Theme           ThemeConfig `mapstructure:"theme"`
	ShowLineNumbers bool        `mapstructure:"show_line_numbers"`
}

// ThemeConfig holds the status line colors as #RRGGBB hex strings.
type ThemeConfig struct {
	StatusBackground string `mapstructure:"status_background"`
	StatusForeground string `mapstructure:"status_foreground"`
	StatusHighlight  string `mapstructure:"status_highlight"`
}

// LogConfig holds logging preferences. An empty File means the logger's
// default location under ~/.config/vellum.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from $HOME/.config/vellum/config.yaml (or the
// working directory) and VELLUM_* environment variables. The returned
// Config is always usable: a missing file yields the defaults silently, and
// a broken file or invalid values yield the defaults along with a non-nil
// error for the caller to log.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/vellum")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("VELLUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Default(), fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Default(), fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return Default(), err
	}

	return &config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: ThemeConfig{
				StatusBackground: "#282828",
				StatusForeground: "#D2D2D2",
				StatusHighlight:  "#FFD255",
			},
			ShowLineNumbers: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Validate checks the configuration values.
func Validate(cfg *Config) error {
	if err := validateHexColor("ui.theme.status_background", cfg.UI.Theme.StatusBackground); err != nil {
		return err
	}
	if err := validateHexColor("ui.theme.status_foreground", cfg.UI.Theme.StatusForeground); err != nil {
		return err
	}
	if err := validateHexColor("ui.theme.status_highlight", cfg.UI.Theme.StatusHighlight); err != nil {
		return err
	}

	validLevels := []string{"debug", "info", "warn", "warning", "error"}
	valid := false
	for _, lv := range validLevels {
		if cfg.Log.Level == lv {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("log.level must be one of: %v, got %s", validLevels, cfg.Log.Level)
	}

	return nil
}

func validateHexColor(key, s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("%s must be a #RRGGBB color, got %q", key, s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("%s must be a #RRGGBB color, got %q", key, s)
	}
	return nil
}

// applyDefaults sets default configuration values.
func applyDefaults() {
	def := Default()

	viper.SetDefault("ui.theme.status_background", def.UI.Theme.StatusBackground)
	viper.SetDefault("ui.theme.status_foreground", def.UI.Theme.StatusForeground)
	viper.SetDefault("ui.theme.status_highlight", def.UI.Theme.StatusHighlight)
	viper.SetDefault("ui.show_line_numbers", def.UI.ShowLineNumbers)

	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.file", def.Log.File)
}
