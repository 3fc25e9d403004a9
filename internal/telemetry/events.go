package telemetry

import (
	"runtime"

	"github.com/asteroid-belt/ymstat/pkg/version"
)

// PostHog event names the sink events are mapped onto.
const (
	PostHogEventPageView = "$pageview"
	PostHogEventParams   = "params"
)

// PostHog property keys.
const (
	PropPathname  = "$pathname"
	PropCounterID = "counter_id"
	PropInstallID = "install_id"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    version.Short(),
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}
