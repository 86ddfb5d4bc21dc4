package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains persistence settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig contains token settings. An empty value keeps the auth
// package's environment-based default.
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	JWTIssuer     string `mapstructure:"jwt_issuer"`
	JWTAudience   string `mapstructure:"jwt_audience"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

// Load reads configuration from TASKHUB_-prefixed environment variables,
// falling back to defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8800)
	v.SetDefault("database.path", "taskhub.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "")
	v.SetDefault("auth.jwt_audience", "")
	v.SetDefault("auth.token_ttl_hours", 24)

	v.SetEnvPrefix("TASKHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
