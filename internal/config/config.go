// Package config loads serve-time configuration for the galleria demo
// server from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the serve command configuration.
type Config struct {
	Server ServerConfig
	Picker PickerConfig
}

// ServerConfig holds HTTP listener settings. Write timeouts are left
// unset on the listener because WebSocket connections are long-lived.
type ServerConfig struct {
	Addr              string `mapstructure:"addr"`
	ReadHeaderTimeout int    `mapstructure:"read_header_timeout"` // seconds
	ShutdownTimeout   int    `mapstructure:"shutdown_timeout"`    // seconds
}

// PickerConfig holds gallery picker limits.
type PickerConfig struct {
	MaxSizeBytes int64  `mapstructure:"max_size_bytes"`
	Accept       string `mapstructure:"accept"`
	MaxCount     int    `mapstructure:"max_count"`
}

// Load reads configuration from galleria.yaml (working directory or
// /etc/galleria) and env. Env var overrides use prefix GALLERIA_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("picker.max_size_bytes", int64(10*1024*1024))
	v.SetDefault("picker.accept", "image/*")
	v.SetDefault("picker.max_count", 0)

	v.SetConfigType("yaml")
	v.SetConfigName("galleria")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/galleria")

	v.SetEnvPrefix("GALLERIA")
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
