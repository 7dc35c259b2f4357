// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/disclosure"
	"github.com/Zachkp/portfolio/internal/theme"
)

type Config struct {
	Port         string
	DatabasePath string
	StaticDir    string
	ImagesDir    string

	LogLevel  string
	LogFormat string

	// RowLimit is the number of grid rows shown before "Show More".
	RowLimit     int
	DefaultTheme theme.Theme

	ContactEndpoint string
	ContactTimeout  time.Duration
	SMTP            contact.SMTPConfig

	PreferenceRetention time.Duration
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// Read parses a dotenv file without touching the process environment.
func Read(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return FromLookup(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})
}

// FromLookup builds a Config from lookup, applying defaults for unset keys.
func FromLookup(lookup LookupFunc) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            get("PORT", "8080"),
		DatabasePath:    get("DATABASE_PATH", "portfolio.db"),
		StaticDir:       get("STATIC_DIR", "./static"),
		ImagesDir:       get("IMAGES_DIR", "./images"),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "text"),
		ContactEndpoint: get("CONTACT_ENDPOINT", ""),
		SMTP: contact.SMTPConfig{
			Host:     get("SMTP_HOST", "smtp.gmail.com"),
			Port:     get("SMTP_PORT", "587"),
			User:     get("SMTP_USER", ""),
			Password: get("SMTP_PASS", ""),
			To:       get("TO_EMAIL", ""),
		},
	}

	var err error
	if cfg.RowLimit, err = strconv.Atoi(get("ROW_LIMIT", strconv.Itoa(disclosure.DefaultRowLimit))); err != nil || cfg.RowLimit < 1 {
		return Config{}, fmt.Errorf("ROW_LIMIT must be a positive integer, got %q", get("ROW_LIMIT", ""))
	}

	t := get("DEFAULT_THEME", string(theme.Default))
	if !theme.Valid(t) {
		return Config{}, fmt.Errorf("DEFAULT_THEME must be light or dark, got %q", t)
	}
	cfg.DefaultTheme = theme.Parse(t)

	if cfg.ContactTimeout, err = duration(get("CONTACT_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("CONTACT_TIMEOUT: %w", err)
	}
	if cfg.PreferenceRetention, err = duration(get("PREFERENCE_RETENTION", "8760h")); err != nil {
		return Config{}, fmt.Errorf("PREFERENCE_RETENTION: %w", err)
	}
	return cfg, nil
}

func duration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
