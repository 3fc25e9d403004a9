package cli

import (
	"github.com/asteroid-belt/ymstat/internal/config"
	"github.com/asteroid-belt/ymstat/internal/log"
	"github.com/asteroid-belt/ymstat/internal/telemetry"
)

// openSink picks the analytics sink for this run. It returns a nil sink when
// reporting is disabled; the returned close func is always safe to call.
func openSink(c *config.Config, dryRun bool, ids telemetry.InstallIDProvider) (telemetry.Sink, func()) {
	if dryRun {
		return telemetry.LogSink{}, func() {}
	}

	ph := telemetry.NewPostHogSink(telemetry.PostHogConfig{
		APIKey:   c.Analytics.PostHogAPIKey,
		Endpoint: c.Analytics.PostHogEndpoint,
	}, ids)
	if ph == nil {
		log.Debugf("analytics sink disabled")
		return nil, func() {}
	}
	log.Debugf("posthog sink enabled for install %s", ph.InstallID())
	return ph, ph.Close
}

// resolveCounter returns the flag value if set, otherwise the configured default.
func resolveCounter(flagValue int, flagSet bool, c *config.Config) (int, error) {
	if flagSet {
		return flagValue, nil
	}
	if c != nil && c.Analytics.CounterID != 0 {
		return c.Analytics.CounterID, nil
	}
	return 0, errNoCounter
}
