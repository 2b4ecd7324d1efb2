// Package config loads dashboard settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Zachdehooge/wildfire-dashboard/internal/fetcher"
	"github.com/Zachdehooge/wildfire-dashboard/internal/poller"
)

// Environment variables read by Load.
const (
	EnvAPIBase  = "WILDFIRE_API_BASE"
	EnvInterval = "WILDFIRE_INTERVAL"
	EnvAddr     = "WILDFIRE_ADDR"
)

// MinInterval is the shortest accepted refresh period.
const MinInterval = time.Second

// Config holds the dashboard settings.
type Config struct {
	APIBase  string
	Interval time.Duration
	Addr     string
}

// Load reads an optional .env file from each of files (or ./.env when none
// are given), then the environment. Unset values take their defaults.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("[config] ignoring %s: %v", f, err)
			}
		}
	}

	cfg := &Config{
		APIBase:  fetcher.DefaultBaseURL,
		Interval: poller.DefaultInterval,
		Addr:     ":8080",
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIBase)); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvInterval)); v != "" {
		d, err := ParseInterval(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvInterval, err)
		}
		cfg.Interval = d
	}

	cfg.Interval = ClampInterval(cfg.Interval)
	return cfg, nil
}

// ParseInterval accepts a Go duration ("10s") or a bare number of seconds.
func ParseInterval(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	var secs int
	if _, err := fmt.Sscanf(s, "%d", &secs); err != nil || fmt.Sprint(secs) != s {
		return 0, fmt.Errorf("invalid interval %q", s)
	}
	return time.Duration(secs) * time.Second, nil
}

// ClampInterval enforces MinInterval.
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}
