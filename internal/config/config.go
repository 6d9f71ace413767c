package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Site     SiteConfig     `mapstructure:"site"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings for the submission log.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SiteConfig holds the published site's settings.
type SiteConfig struct {
	Industry      string `mapstructure:"industry"`
	FallbackRoute string `mapstructure:"fallback_route"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	BrandName string `mapstructure:"brand_name"`
	Accent    string `mapstructure:"accent"`
}

// Load reads configuration from file and env. Env var overrides use prefix SITEFORGE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "siteforge", "siteforge.db"))
	v.SetDefault("site.industry", "plumbing")
	v.SetDefault("site.fallback_route", "/contact")
	v.SetDefault("ui.brand_name", "siteforge")
	v.SetDefault("ui.accent", "#7D56F4")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SITEFORGE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "siteforge"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SITEFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("SITEFORGE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "siteforge", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("site.industry", cfg.Site.Industry)
	v.Set("site.fallback_route", cfg.Site.FallbackRoute)
	v.Set("ui.brand_name", cfg.UI.BrandName)
	v.Set("ui.accent", cfg.UI.Accent)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
