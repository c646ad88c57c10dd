package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string
	Debug      bool
}

// Timeout returns the configured request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads configuration from file and env. Env var overrides use prefix PUBDESK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8080/api/publicacoes")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("ui.date_format", "02/01/2006")
	v.SetDefault("ui.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PUBDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pubdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PUBDESK")
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
