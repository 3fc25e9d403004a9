package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/identity"
	"github.com/asteroid-belt/ymstat/internal/log"
	"github.com/asteroid-belt/ymstat/internal/telemetry"
)

var errNoCounter = errors.New("invalid counter: pass --counter or set YMSTAT_COUNTER_ID")

var (
	hitCounter int
	hitPath    string
	hitDryRun  bool
)

var hitCmd = &cobra.Command{
	Use:   "hit <email>",
	Short: "Report a page-view hit for a user",
	Long: `Report a page-view hit tagged with the user's pseudonymous id.

Three events are sent in order: "hit" with the path, "userParams" with
{UserID} and "params" with {userId}. With no analytics sink configured
nothing is sent and the command still succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: runHit,
}

func init() {
	hitCmd.Flags().IntVar(&hitCounter, "counter", 0, "Counter id (default: YMSTAT_COUNTER_ID)")
	hitCmd.Flags().StringVar(&hitPath, "path", telemetry.DefaultPath, "Navigation path to report")
	hitCmd.Flags().BoolVar(&hitDryRun, "dry-run", false, "Log events instead of sending them")
}

func runHit(cmd *cobra.Command, args []string) error {
	email := args[0]

	counterID, err := resolveCounter(hitCounter, cmd.Flags().Changed("counter"), cfg)
	if err != nil {
		return trackCLIError("hit", err)
	}

	database, err := openDB("hit")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	sink, closeSink := openSink(cfg, hitDryRun, database)
	defer closeSink()

	path := hitPath
	reporter := telemetry.NewReporter(sink, telemetry.WithLocation(func() string { return path }))
	id := reporter.ReportHit(counterID, email)

	log.Debugf("hit counter=%d user=%s id=%s", counterID, identity.MaskEmail(email), identity.ShortID(id))

	out := cmd.OutOrStdout()
	if sink == nil {
		_, _ = fmt.Fprintf(out, "%s %s\n", warnStyle.Render("no analytics sink, nothing sent for"), idStyle.Render(id))
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s %d %s\n", successStyle.Render("reported hit to counter"), counterID, idStyle.Render(id))
	return nil
}
