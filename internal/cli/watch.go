package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/telemetry"
	"github.com/asteroid-belt/ymstat/internal/trigger"
)

var (
	watchCounter int
	watchPath    string
	watchDryRun  bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <email>",
	Short: "Report hits as the counter id changes",
	Long: `Read counter ids from stdin, one per line, and report a hit for the
user on start and each time the counter id changes. Repeated ids are
ignored. If --counter or YMSTAT_COUNTER_ID is set, it is observed first.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchCounter, "counter", 0, "Initial counter id (default: YMSTAT_COUNTER_ID)")
	watchCmd.Flags().StringVar(&watchPath, "path", telemetry.DefaultPath, "Navigation path to report")
	watchCmd.Flags().BoolVar(&watchDryRun, "dry-run", false, "Log events instead of sending them")
}

func runWatch(cmd *cobra.Command, args []string) error {
	email := args[0]

	database, err := openDB("watch")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	sink, closeSink := openSink(cfg, watchDryRun, database)
	defer closeSink()

	path := watchPath
	reporter := telemetry.NewReporter(sink, telemetry.WithLocation(func() string { return path }))
	out := cmd.OutOrStdout()

	tr := trigger.NewCounterTrigger(func(counterID int) {
		id := reporter.ReportHit(counterID, email)
		_, _ = fmt.Fprintf(out, "%s %d %s\n", successStyle.Render("hit"), counterID, mutedStyle.Render(id))
	})

	if initial, err := resolveCounter(watchCounter, cmd.Flags().Changed("counter"), cfg); err == nil {
		tr.Observe(initial)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = watchCounters(ctx, cmd.InOrStdin(), tr)
	if last, ok := tr.Last(); ok {
		_, _ = fmt.Fprintf(out, "%s %d\n", mutedStyle.Render("last counter"), last)
	}
	return trackCLIError("watch", err)
}

// watchCounters feeds counter ids from r into tr until EOF or until ctx is
// done. Blank lines are skipped; anything else must be an integer.
// A reader blocked in Read is abandoned on cancellation.
func watchCounters(ctx context.Context, r io.Reader, tr *trigger.CounterTrigger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	var scanErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return scanErr
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			id, err := strconv.Atoi(line)
			if err != nil {
				return fmt.Errorf("invalid counter id %q: %w", line, err)
			}
			tr.Observe(id)
		}
	}
}
