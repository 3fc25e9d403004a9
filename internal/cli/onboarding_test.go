package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ymstat/internal/onboarding"
)

func TestOnboardingCmd_Structure(t *testing.T) {
	assert.Equal(t, "onboarding", onboardingCmd.Use)

	var names []string
	for _, cmd := range onboardingCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"status", "accept", "deny", "later", "reset"}, names)
}

func TestOnboardingFlow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("YMSTAT_COURSE_URL", "")

	out, err := runCLI(t, home, "onboarding", "status", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "prompt pending")

	out, err = runCLI(t, home, "onboarding", "later", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "will show again")

	out, err = runCLI(t, home, "onboarding", "accept", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, onboarding.DefaultCourseURL)

	out, err = runCLI(t, home, "onboarding", "status", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "answered")

	_, err = runCLI(t, home, "onboarding", "reset", "user@example.com")
	require.NoError(t, err)

	out, err = runCLI(t, home, "onboarding", "status", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "prompt pending")
}

func TestOnboardingDeny(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "onboarding", "deny", "user@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, onboarding.DeclinedNotice)
}
