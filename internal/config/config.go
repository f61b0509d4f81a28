package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool-level defaults applied when a command does not
// override them on the command line.
type Config struct {
	Debug bool `mapstructure:"debug"`

	// DefaultImageWidthCm is used when inserting pictures without an
	// explicit size.
	DefaultImageWidthCm float64 `mapstructure:"default_image_width_cm"`

	// Font defaults applied by the style subcommands.
	DefaultFont          string  `mapstructure:"default_font"`
	DefaultEastAsianFont string  `mapstructure:"default_east_asian_font"`
	DefaultFontSizePt    float64 `mapstructure:"default_font_size_pt"`

	// DefaultTableStyle is applied to tables created without a style.
	DefaultTableStyle string `mapstructure:"default_table_style"`
}

// Load reads the configuration from configPath, or searches the home
// directory and the working directory for .docxkit.yaml when the path is
// empty. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(".docxkit")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func validate(cfg *Config) error {
	if cfg.DefaultImageWidthCm < 0 {
		return fmt.Errorf("default_image_width_cm must not be negative")
	}
	if cfg.DefaultFontSizePt < 0 {
		return fmt.Errorf("default_font_size_pt must not be negative")
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.DefaultImageWidthCm == 0 {
		cfg.DefaultImageWidthCm = 15
	}
	if cfg.DefaultTableStyle == "" {
		cfg.DefaultTableStyle = "Table Grid"
	}
}

// Save writes the configuration to path, defaulting to ~/.docxkit.yaml.
func Save(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".docxkit.yaml")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("debug", cfg.Debug)
	v.Set("default_image_width_cm", cfg.DefaultImageWidthCm)
	v.Set("default_font", cfg.DefaultFont)
	v.Set("default_east_asian_font", cfg.DefaultEastAsianFont)
	v.Set("default_font_size_pt", cfg.DefaultFontSizePt)
	v.Set("default_table_style", cfg.DefaultTableStyle)

	return v.WriteConfigAs(path)
}
