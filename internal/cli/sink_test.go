package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ymstat/internal/config"
	"github.com/asteroid-belt/ymstat/internal/log"
	"github.com/asteroid-belt/ymstat/internal/telemetry"
)

type fixedInstallID string

func (f fixedInstallID) GetOrCreateInstallID() string { return string(f) }

func TestOpenSink_DryRun(t *testing.T) {
	sink, closeSink := openSink(&config.Config{}, true, nil)
	defer closeSink()
	assert.IsType(t, telemetry.LogSink{}, sink)
}

func TestOpenSink_Disabled(t *testing.T) {
	sink, closeSink := openSink(&config.Config{}, false, nil)
	defer closeSink()
	assert.Nil(t, sink)
}

func TestOpenSink_PostHogLogsInstallID(t *testing.T) {
	t.Setenv(telemetry.EnabledEnvVar, "")
	dir := t.TempDir()
	require.NoError(t, log.Init(dir, false))
	t.Cleanup(func() { _ = log.Close() })

	c := &config.Config{Analytics: config.AnalyticsConfig{
		PostHogAPIKey:   "phc_test",
		PostHogEndpoint: "http://127.0.0.1:1",
	}}
	sink, closeSink := openSink(c, false, fixedInstallID("install-1"))
	require.NotNil(t, sink)
	ph, ok := sink.(*telemetry.PostHogSink)
	require.True(t, ok)
	assert.Equal(t, "install-1", ph.InstallID())
	closeSink()

	require.NoError(t, log.Close())
	data, err := os.ReadFile(filepath.Join(dir, log.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "posthog sink enabled for install install-1")
}
