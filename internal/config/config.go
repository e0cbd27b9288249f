package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	StoreBackend     string   `mapstructure:"STORE_BACKEND"`
	DataDir          string   `mapstructure:"DATA_DIR"`
	DatabaseURL      string   `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
	CatalogFile      string   `mapstructure:"CATALOG_FILE"`
	RateLimitRPS     float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int      `mapstructure:"RATE_LIMIT_BURST"`
	BodyLimit        string   `mapstructure:"BODY_LIMIT"`
	ImportBodyLimit  string   `mapstructure:"IMPORT_BODY_LIMIT"`
	WaterDefaultGoal int      `mapstructure:"WATER_DEFAULT_GOAL"`
	TLSEnabled       bool     `mapstructure:"TLS_ENABLED"`
	TLSCertFile      string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile       string   `mapstructure:"TLS_KEY_FILE"`
}

var keys = []string{
	"PORT", "ENV", "STORE_BACKEND", "DATA_DIR", "DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"CORS_ORIGINS", "CATALOG_FILE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "BODY_LIMIT",
	"IMPORT_BODY_LIMIT", "WATER_DEFAULT_GOAL", "TLS_ENABLED", "TLS_CERT_FILE", "TLS_KEY_FILE",
}

// Load reads .env (when present) and the environment. It does not validate;
// call Validate before starting the server.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("BODY_LIMIT", "1M")
	v.SetDefault("IMPORT_BODY_LIMIT", "10M")
	v.SetDefault("WATER_DEFAULT_GOAL", 8)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the selected store backend has what it needs and that
// the numeric settings are usable.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required when STORE_BACKEND is %q", BackendFile)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is %q", BackendPostgres)
		}
		if c.DBMaxConns < 1 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS (%d) and DB_MAX_CONNS (%d) must satisfy 0 <= min <= max, max >= 1", c.DBMinConns, c.DBMaxConns)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q, %q or %q, got %q", BackendMemory, BackendFile, BackendPostgres, c.StoreBackend)
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1")
	}
	if c.WaterDefaultGoal < 1 || c.WaterDefaultGoal > 20 {
		return fmt.Errorf("WATER_DEFAULT_GOAL must be between 1 and 20, got %d", c.WaterDefaultGoal)
	}

	// TLS validation: when TLS is enabled, cert and key files must be specified.
	if c.TLSEnabled {
		if c.TLSCertFile == "" {
			return fmt.Errorf("TLS_CERT_FILE is required when TLS_ENABLED is true")
		}
		if c.TLSKeyFile == "" {
			return fmt.Errorf("TLS_KEY_FILE is required when TLS_ENABLED is true")
		}
	}
	return nil
}
