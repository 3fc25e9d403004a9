// Package cli provides the command-line interface for ymstat.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/config"
	"github.com/asteroid-belt/ymstat/internal/db"
	"github.com/asteroid-belt/ymstat/internal/log"
	"github.com/asteroid-belt/ymstat/pkg/version"
)

// cfg is loaded once per invocation before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ymstat",
	Short: "Pseudonymous analytics hits for chat users",
	Long: `Pseudonymous analytics hits for chat users

ymstat derives a stable pseudonymous id from a user's email and reports
page-view hits tagged with it. The raw email never leaves this process:
it is hashed with SHA-256 together with the digest of a fixed salt.

The salt is compiled into every build and is not a secret. The id hides
emails from casual inspection, not from someone holding the binary.

Analytics:
  Hits go to PostHog when POSTHOG_API_KEY is set.
  Opt-out with:
  	YMSTAT_TELEMETRY_TRACKING_ENABLED=false`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if err := log.Init(config.GetPaths(cfg).Logs, cfg.Verbose); err != nil {
			return err
		}
		log.Debugf("command %s started", cmd.CommandPath())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Close()
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(hitCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(onboardingCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI with fang enhancements.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		rootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
}

// openDB opens the database at the configured path.
func openDB(name string) (*db.DB, error) {
	database, err := db.New(db.DefaultConfig(config.GetPaths(cfg).Database))
	if err != nil {
		return nil, trackCLIError(name, fmt.Errorf("initialize database: %w", err))
	}
	return database, nil
}

// trackCLIError logs a classified CLI error and returns it unchanged.
// Call this before returning errors from CLI commands.
func trackCLIError(cmdName string, err error) error {
	if err == nil {
		return nil
	}
	log.Debugf("%s failed (%s): %v", cmdName, classifyError(err), err)
	return err
}

// classifyError determines the error type for log lines.
func classifyError(err error) string {
	errStr := err.Error()
	switch {
	case containsAny(errStr, "config", "configuration"):
		return "config_error"
	case containsAny(errStr, "database", "db"):
		return "database_error"
	case containsAny(errStr, "network", "timeout", "connection"):
		return "network_error"
	case containsAny(errStr, "permission", "access denied"):
		return "permission_error"
	case containsAny(errStr, "not found", "does not exist"):
		return "not_found_error"
	case containsAny(errStr, "invalid", "parse", "format"):
		return "validation_error"
	default:
		return "unknown_error"
	}
}

// containsAny checks if s contains any of the substrings (case-insensitive).
func containsAny(s string, substrs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}
