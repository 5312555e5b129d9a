// Package config loads steelcalc settings from an optional file, a .env
// file and STEELCALC_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/check"
)

// EnvPrefix is prepended to every environment override, e.g. STEELCALC_STEEL_FY.
const EnvPrefix = "STEELCALC"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Steel   SteelConfig   `mapstructure:"steel"`
	Server  ServerConfig  `mapstructure:"server"`
	Batch   BatchConfig   `mapstructure:"batch"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// CatalogConfig selects the section catalog. An empty path uses the
// embedded catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// SteelConfig holds the material values used when a check omits them.
type SteelConfig struct {
	Modulus float64 `mapstructure:"modulus"`
	Fy      float64 `mapstructure:"fy"`
	Fu      float64 `mapstructure:"fu"`
	Fexx    float64 `mapstructure:"fexx"`
	Fnv     float64 `mapstructure:"fnv"`
	Fnt     float64 `mapstructure:"fnt"`
	PlateFy float64 `mapstructure:"plate_fy"`
}

// Defaults converts the steel settings for the check evaluator.
func (c SteelConfig) Defaults() check.Defaults {
	return check.Defaults{
		Modulus: c.Modulus,
		Fy:      c.Fy,
		Fu:      c.Fu,
		Fexx:    c.Fexx,
		Fnv:     c.Fnv,
		Fnt:     c.Fnt,
		PlateFy: c.PlateFy,
	}
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second per client
	RateBurst       int           `mapstructure:"rate_burst"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BatchConfig holds job runner configuration.
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// Load reads configuration. A missing file is not an error; a file that
// exists but cannot be parsed is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	steel := check.DefaultSteel()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("catalog.path", "")
	v.SetDefault("steel.modulus", steel.Modulus)
	v.SetDefault("steel.fy", steel.Fy)
	v.SetDefault("steel.fu", steel.Fu)
	v.SetDefault("steel.fexx", steel.Fexx)
	v.SetDefault("steel.fnv", steel.Fnv)
	v.SetDefault("steel.fnt", steel.Fnt)
	v.SetDefault("steel.plate_fy", steel.PlateFy)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.rate_limit", 5)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("batch.workers", 4)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges that would otherwise surface as confusing
// engine errors later.
func (c *Config) Validate() error {
	var errs []error

	for name, v := range map[string]float64{
		"steel.modulus":  c.Steel.Modulus,
		"steel.fy":       c.Steel.Fy,
		"steel.fu":       c.Steel.Fu,
		"steel.fexx":     c.Steel.Fexx,
		"steel.fnv":      c.Steel.Fnv,
		"steel.fnt":      c.Steel.Fnt,
		"steel.plate_fy": c.Steel.PlateFy,
	} {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if !(c.Server.RateLimit > 0) || c.Server.RateBurst < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit and server.rate_burst must be positive"))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be at least 1, got %d", c.Batch.Workers))
	}

	return errors.Join(errs...)
}
