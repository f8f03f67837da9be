package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	App struct {
		Name     string `yaml:"name"`
		Env      string `yaml:"env"`
		Timezone string `yaml:"timezone"`
	} `yaml:"app"`

	HTTP struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`

	Database struct {
		URL         string `yaml:"url"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl"`
	} `yaml:"auth"`

	Jobs struct {
		SoberDaysRefreshCron string `yaml:"sober_days_refresh_cron"`
	} `yaml:"jobs"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.App.Name = "soberup"
	cfg.App.Env = "dev"
	cfg.App.Timezone = "Europe/Berlin"
	cfg.HTTP.Port = "8080"
	cfg.Database.AutoMigrate = true
	cfg.Auth.TokenTTL = time.Hour
	cfg.Jobs.SoberDaysRefreshCron = "0 5 0 * * *"
	return cfg
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order. A .env file in the working directory is
// loaded into the environment first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := overrideFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// overrideFromEnv applies environment variables on top of cfg.
func overrideFromEnv(cfg *Config) error {
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Env = env
	}
	if env := os.Getenv("APP_TIMEZONE"); env != "" {
		cfg.App.Timezone = env
	}
	if env := os.Getenv("PORT"); env != "" {
		cfg.HTTP.Port = env
	}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		cfg.HTTP.AllowedOrigins = splitList(env)
	}
	if env := os.Getenv("POSTGRES_URL"); env != "" {
		cfg.Database.URL = env
	}
	if env := os.Getenv("AUTO_MIGRATE"); env != "" {
		v, err := strconv.ParseBool(env)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE: %w", err)
		}
		cfg.Database.AutoMigrate = v
	}
	if env := os.Getenv("JWT_SECRET"); env != "" {
		cfg.Auth.JWTSecret = env
	}
	if env := os.Getenv("JWT_TTL"); env != "" {
		d, err := time.ParseDuration(env)
		if err != nil {
			return fmt.Errorf("JWT_TTL: %w", err)
		}
		cfg.Auth.TokenTTL = d
	}
	if env := os.Getenv("SOBER_DAYS_REFRESH_CRON"); env != "" {
		cfg.Jobs.SoberDaysRefreshCron = env
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.App.Timezone, err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}

// DefaultPath returns CONFIG_PATH, or "" when no file should be read.
func DefaultPath() string {
	return os.Getenv("CONFIG_PATH")
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
