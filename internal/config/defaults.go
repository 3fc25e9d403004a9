package config

import (
	"path/filepath"

	"github.com/asteroid-belt/ymstat/internal/onboarding"
	"github.com/asteroid-belt/ymstat/internal/telemetry"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	base := DefaultBaseDir()
	return &Config{
		BaseDir: base,

		Analytics: AnalyticsConfig{
			PostHogEndpoint: telemetry.DefaultEndpoint,
		},

		Onboarding: OnboardingConfig{
			CourseURL: onboarding.DefaultCourseURL,
		},

		Cleanup: CleanupConfig{
			UploadsDir: defaultUploadsDir(base),
		},
	}
}

func defaultUploadsDir(base string) string {
	return filepath.Join(base, "uploads")
}
