// Package config loads tableload settings from a file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TABLELOAD_ENDPOINT.
const EnvPrefix = "TABLELOAD"

// Config holds connection and runtime settings for the table service client.
type Config struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Insecure      bool          `mapstructure:"insecure"`
	TLSSkipVerify bool          `mapstructure:"tls_skip_verify"`
	TLSCACert     string        `mapstructure:"tls_ca_cert"`
	ClientID      string        `mapstructure:"client_id"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Workers       int           `mapstructure:"workers"`
	LogLevel      string        `mapstructure:"log_level"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Endpoint: "localhost:50051",
		Insecure: true,
		Timeout:  30 * time.Second,
		Workers:  4,
		LogLevel: "info",
	}
}

// Load reads configuration from an optional file and environment variables.
// If path is empty, tableload.yaml in the working directory is used when present.
// Keys map to environment variables with the TABLELOAD prefix, so "api_key"
// becomes TABLELOAD_API_KEY.
func Load(path string) (*Config, error) {
	return LoadWith(viper.New(), path)
}

// LoadWith is Load against a caller-supplied viper instance, which lets the
// CLI bind its flags before the values are resolved.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v, cfg)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("tableload")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("config: endpoint is required")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// setDefaults registers every field so AutomaticEnv can find it during Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	val := reflect.ValueOf(cfg)
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		key := typ.Field(i).Tag.Get("mapstructure")
		if key == "" {
			key = strings.ToLower(typ.Field(i).Name)
		}
		v.SetDefault(key, val.Field(i).Interface())
	}
}
