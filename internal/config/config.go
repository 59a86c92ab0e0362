package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureJWTSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

// LoadConfig builds a Config from environment defaults and, when path is
// non-empty, overrides from a YAML file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("ATTENDIFY_ADDR", ":8080"),
		JWTSecret:     getEnv("ATTENDIFY_JWT_SECRET", insecureJWTSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("ATTENDIFY_DATABASE_PATH", "attendify.db"),
		TokenDuration: 1 * time.Hour,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach a deployed server.
// The default JWT secret is only tolerated when ATTENDIFY_ENV=development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	if c.JWTSecret == insecureJWTSecret && os.Getenv("ATTENDIFY_ENV") != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set ATTENDIFY_JWT_SECRET")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
