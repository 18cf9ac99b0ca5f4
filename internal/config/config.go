package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address      string        `yaml:"address" env:"HBNB_ADDR"`
		ReadTimeout  time.Duration `yaml:"read_timeout" env:"HBNB_READ_TIMEOUT"`
		WriteTimeout time.Duration `yaml:"write_timeout" env:"HBNB_WRITE_TIMEOUT"`
	} `yaml:"server"`
	Database struct {
		// Driver is memory, mysql, postgres or sqlite.
		Driver       string `yaml:"driver" env:"HBNB_DB_DRIVER"`
		URL          string `yaml:"url" env:"HBNB_DB_URL"`
		MaxOpenConns int    `yaml:"max_open_conns" env:"HBNB_DB_MAX_OPEN_CONNS"`
		AutoMigrate  bool   `yaml:"auto_migrate" env:"HBNB_DB_AUTO_MIGRATE"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr" env:"HBNB_REDIS_ADDR"`
		Password string `yaml:"password" env:"HBNB_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"HBNB_REDIS_DB"`
	} `yaml:"redis"`
	Auth struct {
		JWTSecret    string        `yaml:"jwt_secret" env:"HBNB_JWT_SECRET"`
		AccessTTL    time.Duration `yaml:"access_ttl" env:"HBNB_ACCESS_TTL"`
		RefreshTTL   time.Duration `yaml:"refresh_ttl" env:"HBNB_REFRESH_TTL"`
		SessionSweep time.Duration `yaml:"session_sweep_interval" env:"HBNB_SESSION_SWEEP_INTERVAL"`
	} `yaml:"auth"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" env:"HBNB_CORS_ORIGINS" envSeparator:","`
	} `yaml:"cors"`
	Admin struct {
		Email     string `yaml:"email" env:"HBNB_ADMIN_EMAIL"`
		Password  string `yaml:"password" env:"HBNB_ADMIN_PASSWORD"`
		FirstName string `yaml:"first_name" env:"HBNB_ADMIN_FIRST_NAME"`
		LastName  string `yaml:"last_name" env:"HBNB_ADMIN_LAST_NAME"`
	} `yaml:"admin"`
	Log struct {
		Level       string `yaml:"level" env:"HBNB_LOG_LEVEL"`
		Development bool   `yaml:"development" env:"HBNB_LOG_DEVELOPMENT"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Server.Address = ":5000"
	cfg.Server.ReadTimeout = 10 * time.Second
	cfg.Server.WriteTimeout = 10 * time.Second
	cfg.Database.Driver = "memory"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.AutoMigrate = true
	cfg.Auth.AccessTTL = 15 * time.Minute
	cfg.Auth.RefreshTTL = 30 * 24 * time.Hour
	cfg.Auth.SessionSweep = 10 * time.Minute
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5000"}
	cfg.Admin.FirstName = "Admin"
	cfg.Admin.LastName = "HBnB"
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig reads path (if it exists), overlays HBNB_* environment
// variables and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDatabaseConfig is LoadConfig for tools that only touch storage.
// Auth and server settings are not checked.
func LoadDatabaseConfig(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read loads defaults, the YAML file at path and the environment without
// validating anything.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config: %w", err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("auth.jwt_secret (HBNB_JWT_SECRET) is required")
	}
	if c.Auth.AccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return errors.New("auth token ttls must be positive")
	}
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	return nil
}

func (c Config) ValidateDatabase() error {
	switch c.Database.Driver {
	case "memory":
	case "mysql", "mariadb", "postgres", "postgresql", "pgx", "sqlite", "sqlite3":
		if c.Database.URL == "" {
			return fmt.Errorf("database.url is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

// UsesSQL reports whether the configured storage is a database.
func (c Config) UsesSQL() bool {
	return c.Database.Driver != "memory"
}
