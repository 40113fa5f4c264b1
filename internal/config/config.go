// Package config loads the application configuration from the environment
// and an optional YAML file through github.com/spf13/viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"clinic-records/internal/common/pagination"
)

// Supported database drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// MinJWTSecretLength is the shortest accepted JWT_SECRET.
const MinJWTSecretLength = 32

// Config is the application configuration.
type Config struct {
	Port       int              `yaml:"port"`
	LogLevel   string           `yaml:"log_level"`
	Database   DatabaseConfig   `yaml:"database"`
	JWTSecret  string           `yaml:"jwt_secret"`
	Storage    StorageConfig    `yaml:"storage"`
	Pagination PaginationConfig `yaml:"pagination"`
	CORS       CORSConfig       `yaml:"cors"`
	// UploadMaxBytes limits uploaded file content.
	UploadMaxBytes int64 `yaml:"upload_max_bytes"`
	// ConfigFile is the file the values were read from, if any.
	ConfigFile string `yaml:"config_file,omitempty"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	URL             string        `yaml:"url"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type StorageConfig struct {
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// Params converts the limits to the resolver configuration.
func (p PaginationConfig) Params() pagination.Config {
	cfg := pagination.DefaultConfig()
	cfg.DefaultLimit = p.DefaultLimit
	cfg.MaxLimit = p.MaxLimit
	return cfg
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// keys maps configuration keys to their defaults. Each key is also read from
// the environment variable of the same name in upper case.
var keys = map[string]any{
	"port":                        8000,
	"log_level":                   "info",
	"db_driver":                   DriverMongo,
	"database_url":                "mongodb://localhost:27017",
	"database_name":               "jaga_sehat_indonesia",
	"db_max_open_conns":           25,
	"db_max_idle_conns":           10,
	"db_conn_max_lifetime":        time.Hour,
	"db_conn_max_idle_time":       30 * time.Minute,
	"jwt_secret":                  "",
	"aws_access_key_id":           "",
	"aws_secret_access_key":       "",
	"aws_default_region":          "idn",
	"aws_endpoint":                "",
	"aws_use_path_style_endpoint": true,
	"aws_bucket":                  "atm-sehat",
	"pagination_default_limit":    10,
	"pagination_max_limit":        100,
	"cors_allowed_origins":        "*",
	"upload_max_bytes":            262144,
}

// Load reads the configuration. Values come, in increasing precedence, from
// the defaults, the YAML file named by CONFIG_FILE, and the environment.
// Out-of-range pagination and upload limits fall back to their defaults with
// a warning; everything else is checked by Validate.
func Load() (*Config, error) {
	v := viper.New()
	for k, def := range keys {
		v.SetDefault(k, def)
	}
	v.AutomaticEnv()
	_ = v.BindEnv("config_file", "CONFIG_FILE")

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			Metrics.RecordValidationError("config_file")
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:     v.GetInt("port"),
		LogLevel: strings.ToLower(v.GetString("log_level")),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("db_driver")),
			URL:             v.GetString("database_url"),
			Name:            v.GetString("database_name"),
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
			ConnMaxIdleTime: v.GetDuration("db_conn_max_idle_time"),
		},
		JWTSecret: v.GetString("jwt_secret"),
		Storage: StorageConfig{
			Endpoint:        v.GetString("aws_endpoint"),
			AccessKeyID:     v.GetString("aws_access_key_id"),
			SecretAccessKey: v.GetString("aws_secret_access_key"),
			Region:          v.GetString("aws_default_region"),
			Bucket:          v.GetString("aws_bucket"),
			UsePathStyle:    v.GetBool("aws_use_path_style_endpoint"),
		},
		Pagination: PaginationConfig{
			DefaultLimit: v.GetInt("pagination_default_limit"),
			MaxLimit:     v.GetInt("pagination_max_limit"),
		},
		CORS:           CORSConfig{AllowedOrigins: splitList(v.GetString("cors_allowed_origins"))},
		UploadMaxBytes: v.GetInt64("upload_max_bytes"),
		ConfigFile:     v.ConfigFileUsed(),
	}

	warnings := cfg.applyFallbacks()
	for _, w := range warnings {
		slog.Warn("configuration fallback applied", slog.String("detail", w))
	}
	Metrics.SetFallbackActive(len(warnings) > 0)
	Metrics.RecordLoadTimestamp()

	return cfg, nil
}

// applyFallbacks replaces out-of-range limits with their defaults and
// returns one warning per replacement.
func (c *Config) applyFallbacks() []string {
	var warnings []string
	fallback := func(field string, got, def any) {
		Metrics.RecordFallback(field)
		warnings = append(warnings, fmt.Sprintf("invalid %s=%v, falling back to default %v", field, got, def))
	}

	if c.Pagination.MaxLimit < 1 {
		fallback("pagination_max_limit", c.Pagination.MaxLimit, keys["pagination_max_limit"])
		c.Pagination.MaxLimit = keys["pagination_max_limit"].(int)
	}
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		def := min(keys["pagination_default_limit"].(int), c.Pagination.MaxLimit)
		fallback("pagination_default_limit", c.Pagination.DefaultLimit, def)
		c.Pagination.DefaultLimit = def
	}
	if c.UploadMaxBytes < 1 {
		fallback("upload_max_bytes", c.UploadMaxBytes, keys["upload_max_bytes"])
		c.UploadMaxBytes = int64(keys["upload_max_bytes"].(int))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		fallback("cors_allowed_origins", "", "*")
		c.CORS.AllowedOrigins = []string{"*"}
	}
	return warnings
}

// Validate reports every setting that prevents the server from starting.
func (c *Config) Validate() error {
	var errs []error
	add := func(field string, err error) {
		Metrics.RecordValidationError(field)
		errs = append(errs, err)
	}

	if c.Port < 1 || c.Port > 65535 {
		add("port", fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		add("log_level", fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}
	switch c.Database.Driver {
	case DriverMongo, DriverPostgres:
		if c.Database.URL == "" {
			add("database_url", errors.New("DATABASE_URL is required"))
		}
	case DriverMemory:
	default:
		add("db_driver", fmt.Errorf("DB_DRIVER must be one of mongo, postgres, memory, got %q", c.Database.Driver))
	}
	if c.Database.Driver == DriverMongo && c.Database.Name == "" {
		add("database_name", errors.New("DATABASE_NAME is required for the mongo driver"))
	}
	if c.JWTSecret == "" {
		add("jwt_secret", errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < MinJWTSecretLength {
		add("jwt_secret", fmt.Errorf("JWT_SECRET must be at least %d characters", MinJWTSecretLength))
	}
	if c.Storage.Bucket == "" {
		add("aws_bucket", errors.New("AWS_BUCKET is required"))
	}

	return errors.Join(errs...)
}

// LogValue returns the configuration with credentials masked.
func (c *Config) LogValue() slog.Value {
	r := c.Redacted()
	return slog.GroupValue(
		slog.Int("port", r.Port),
		slog.String("log_level", r.LogLevel),
		slog.String("db_driver", r.Database.Driver),
		slog.String("database_url", r.Database.URL),
		slog.String("database_name", r.Database.Name),
		slog.String("storage_endpoint", r.Storage.Endpoint),
		slog.String("storage_bucket", r.Storage.Bucket),
		slog.Int("pagination_default_limit", r.Pagination.DefaultLimit),
		slog.Int("pagination_max_limit", r.Pagination.MaxLimit),
	)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
