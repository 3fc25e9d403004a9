// Package config handles application configuration management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all ymstat data (~/.ymstat)
	BaseDir string

	// Analytics reporting settings
	Analytics AnalyticsConfig

	// Onboarding course settings
	Onboarding OnboardingConfig

	// Temporary upload cleanup settings
	Cleanup CleanupConfig

	// Verbose mirrors debug log lines to the console.
	Verbose bool
}

// AnalyticsConfig holds counter and PostHog settings.
type AnalyticsConfig struct {
	// Default counter id when none is given on the command line (YMSTAT_COUNTER_ID)
	CounterID int
	// PostHog project key (POSTHOG_API_KEY); empty disables the PostHog sink
	PostHogAPIKey string
	// PostHog host (POSTHOG_ENDPOINT)
	PostHogEndpoint string
}

// OnboardingConfig holds the training course settings.
type OnboardingConfig struct {
	// URL opened when the course is accepted (YMSTAT_COURSE_URL)
	CourseURL string
}

// CleanupConfig holds temporary upload cleanup settings.
type CleanupConfig struct {
	// Root directory for locally stored uploads (YMSTAT_UPLOADS_DIR)
	UploadsDir string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("YMSTAT_HOME"); dir != "" {
		cfg.BaseDir = dir
		cfg.Cleanup.UploadsDir = defaultUploadsDir(dir)
	}

	if raw := strings.TrimSpace(os.Getenv("YMSTAT_COUNTER_ID")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid YMSTAT_COUNTER_ID %q: %w", raw, err)
		}
		cfg.Analytics.CounterID = id
	}

	if apiKey := os.Getenv("POSTHOG_API_KEY"); apiKey != "" {
		cfg.Analytics.PostHogAPIKey = apiKey
	}

	if endpoint := os.Getenv("POSTHOG_ENDPOINT"); endpoint != "" {
		cfg.Analytics.PostHogEndpoint = endpoint
	}

	if url := os.Getenv("YMSTAT_COURSE_URL"); url != "" {
		cfg.Onboarding.CourseURL = url
	}

	if dir := os.Getenv("YMSTAT_UPLOADS_DIR"); dir != "" {
		cfg.Cleanup.UploadsDir = dir
	}

	cfg.Verbose = os.Getenv("YMSTAT_VERBOSE") == "true"

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	paths := GetPaths(cfg)
	for _, dir := range []string{cfg.BaseDir, paths.Logs} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
