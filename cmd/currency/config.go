package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
}

func LoadConfig() (Config, error) {
	// .env is optional for a console tool
	_ = godotenv.Overload()

	cfg := Config{
		HTTPTimeout: 10 * time.Second,
	}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("NBP_BASE_URL"))

	if t := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT")); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return Config{}, fmt.Errorf("parse HTTP_TIMEOUT %q: %w", t, err)
		}
		cfg.HTTPTimeout = d
	}

	return cfg, nil
}
