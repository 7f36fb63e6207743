package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	API     API
	Log     Log
	Metrics Metrics
}

type API struct {
	BaseURL string `env:"HNB_API_URL" env-default:"http://api.hnb.hr/tecajn/v2" env-description:"HNB exchange rate list endpoint"`
}

type Log struct {
	Level string `env:"HNB_LOG_LEVEL" env-default:"WARN" env-description:"DEBUG, INFO, WARN, ERROR or FATAL"`
}

type Metrics struct {
	TextfilePath string `env:"HNB_METRICS_FILE" env-description:"write Prometheus metrics to this file after each run"`
}

// Load reads the configuration from the environment. Values from envFile are
// applied first when the file exists; variables already set take precedence.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	return cfg, nil
}

// Usage describes the supported environment variables
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
