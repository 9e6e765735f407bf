// Package config loads the service configuration from a YAML file with
// SEARCH_-prefixed environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the search service.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Index     IndexConfig     `mapstructure:"index"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server and auth settings.
type ServerConfig struct {
	Address       string        `mapstructure:"address"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	SuggestionTTL time.Duration `mapstructure:"suggestion_ttl"`
}

// DatabasesConfig groups the backing stores. Both are optional: without
// Postgres the API runs without accounts and history, without Redis the
// suggestion cache and scheduler locks are skipped.
type DatabasesConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN builds a connection string, preferring an explicit URL. Returns ""
// when Postgres is not configured.
func (p PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}
	if p.Host == "" || p.DBName == "" {
		return ""
	}
	port := p.Port
	if port == "" {
		port = "5432"
	}
	ssl := p.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", p.User, p.Password, p.Host, port, p.DBName, ssl)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns host:port, or "" when Redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

// IndexConfig controls the demo corpus and result paging.
type IndexConfig struct {
	DemoSeed    int64 `mapstructure:"demo_seed"`
	DemoSize    int   `mapstructure:"demo_size"`
	ResultLimit int   `mapstructure:"result_limit"`
}

// SchedulerConfig controls the periodic corpus refresh.
type SchedulerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	RefreshCron string `mapstructure:"refresh_cron"`
}

// LoadConfig reads configuration from path, or from config.yaml in the
// usual locations when path is empty. Environment variables with the
// SEARCH_ prefix override file values. A missing file is not an error;
// defaults and environment still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("general.log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.suggestion_ttl", "5m")
	v.SetDefault("index.demo_seed", 1)
	v.SetDefault("index.demo_size", 500)
	v.SetDefault("index.result_limit", 20)
	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.refresh_cron", "@daily")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("SEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
