package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FINCALC_LOG_LEVEL
const EnvPrefix = "FINCALC"

// Settings holds application settings (not scenario data)
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Policy PolicySettings `mapstructure:"policy"`
	Output OutputSettings `mapstructure:"output"`
	Server ServerSettings `mapstructure:"server"`
	Cache  CacheSettings  `mapstructure:"cache"`
	Sentry SentrySettings `mapstructure:"sentry"`
}

// LogSettings selects the zap level and encoder
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PolicySettings selects the tax-year table and an optional override file
type PolicySettings struct {
	Year int    `mapstructure:"year"` // 0 means latest
	File string `mapstructure:"file"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
}

// ServerSettings configures the JSON API
type ServerSettings struct {
	Addr       string        `mapstructure:"addr"`
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

// CacheSettings configures the API result cache. An empty RedisAddr
// selects the in-memory cache.
type CacheSettings struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
	// MaxEntries caps the in-memory cache; zero means unbounded
	MaxEntries int `mapstructure:"max_entries"`
}

type SentrySettings struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

// NewViper returns a viper instance with defaults and env overrides wired
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("policy.year", 0)
	v.SetDefault("policy.file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 60)
	v.SetDefault("server.rate_window", time.Minute)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.max_entries", 10000)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings reads an optional settings file into v and decodes the result.
// An empty configPath uses defaults, environment and any bound flags only.
func LoadSettings(v *viper.Viper, configPath string) (*Settings, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate rejects settings no component can run with
func (s *Settings) Validate() error {
	var errs []error

	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level: %s", s.Log.Level))
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format: %s", s.Log.Format))
	}
	if s.Server.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("server.rate_limit cannot be negative"))
	}
	if s.Server.RateLimit > 0 && s.Server.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_window must be positive when rate limiting is enabled"))
	}
	if s.Cache.TTL < 0 {
		errs = append(errs, fmt.Errorf("cache.ttl cannot be negative"))
	}
	if s.Cache.MaxEntries < 0 {
		errs = append(errs, fmt.Errorf("cache.max_entries cannot be negative"))
	}

	return errors.Join(errs...)
}
