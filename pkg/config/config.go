package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Type string `yaml:"type"` // "sqlite" or "postgres"
	DSN  string `yaml:"dsn"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	SecretKey     string        `yaml:"secret_key"`
	TokenExpiry   time.Duration `yaml:"token_expiry"`
	Issuer        string        `yaml:"issuer"`
	AdminEmail    string        `yaml:"admin_email"`
	AdminPassword string        `yaml:"admin_password"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from defaults, an optional YAML file,
// a .env file, and environment variables, in that order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "3000",
			Env:  "development",
		},
		Database: DatabaseConfig{
			Type: "sqlite",
			DSN:  "./data/lostfound.db",
		},
		Auth: AuthConfig{
			SecretKey:   "change-me-in-production",
			TokenExpiry: 24 * time.Hour,
			Issuer:      "lostfound-api",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) applyEnv() {
	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Env = getEnv("ENV", c.Server.Env)

	c.Database.Type = getEnv("DB_TYPE", c.Database.Type)
	if dsn := buildDSN(c.Database.Type); dsn != "" {
		c.Database.DSN = dsn
	}
	c.Database.DSN = getEnv("DATABASE_URL", c.Database.DSN)

	c.Auth.SecretKey = getEnv("JWT_SECRET", c.Auth.SecretKey)
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Auth.TokenExpiry = d
		}
	}
	c.Auth.AdminEmail = getEnv("ADMIN_EMAIL", c.Auth.AdminEmail)
	c.Auth.AdminPassword = getEnv("ADMIN_PASSWORD", c.Auth.AdminPassword)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = getEnv("LOG_FORMAT", c.Logging.Format)
}

// buildDSN assembles a DSN from the individual DB_* variables when they
// are present; DATABASE_URL still wins when set.
func buildDSN(dbType string) string {
	if dbType != "postgres" {
		if path := os.Getenv("SQLITE_PATH"); path != "" {
			return path
		}
		return ""
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "lostfound"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

// Validate checks the configuration for required settings.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("auth secret key is required")
	}
	if c.Auth.TokenExpiry <= 0 {
		return fmt.Errorf("auth token expiry must be positive")
	}
	if c.Database.Type != "sqlite" && c.Database.Type != "postgres" {
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
