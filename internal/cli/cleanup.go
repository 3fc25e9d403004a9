package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/cleanup"
	"github.com/asteroid-belt/ymstat/internal/db"
	"github.com/asteroid-belt/ymstat/internal/models"
)

var (
	cleanupAddPath     string
	cleanupAddSource   string
	cleanupAddTempID   string
	cleanupAddEmbedded bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Manage temporary uploads queued for deletion",
	Long: `Manage temporary uploads queued for deletion.

Only files with a path, a source and a temp file id that are not embedded
are deleted. Local files are removed from YMSTAT_UPLOADS_DIR; files from
other sources are reported and left alone.

Subcommands:
  add <file-id>   Queue a file
  import <file>   Queue every file from a JSON map ("-" reads stdin)
  list            List queued files
  run             Delete eligible files and clear the queue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var cleanupAddCmd = &cobra.Command{
	Use:   "add <file-id>",
	Short: "Queue a file for deletion",
	Args:  cobra.ExactArgs(1),
	RunE:  runCleanupAdd,
}

var cleanupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Queue files from a JSON map keyed by file id",
	Args:  cobra.ExactArgs(1),
	RunE:  runCleanupImport,
}

var cleanupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List queued files",
	Args:  cobra.NoArgs,
	RunE:  runCleanupList,
}

var cleanupRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Delete eligible files and clear the queue",
	Args:  cobra.NoArgs,
	RunE:  runCleanupRun,
}

func init() {
	cleanupAddCmd.Flags().StringVar(&cleanupAddPath, "path", "", "Stored file path")
	cleanupAddCmd.Flags().StringVar(&cleanupAddSource, "source", string(models.FileSourceLocal), "File source (local, s3, firebase, openai)")
	cleanupAddCmd.Flags().StringVar(&cleanupAddTempID, "temp-id", "", "Temporary file id")
	cleanupAddCmd.Flags().BoolVar(&cleanupAddEmbedded, "embedded", false, "File is embedded and must be kept")

	cleanupCmd.AddCommand(cleanupAddCmd)
	cleanupCmd.AddCommand(cleanupImportCmd)
	cleanupCmd.AddCommand(cleanupListCmd)
	cleanupCmd.AddCommand(cleanupRunCmd)
}

func runCleanupAdd(cmd *cobra.Command, args []string) error {
	database, err := openDB("cleanup add")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	f := &models.PendingFile{
		FileID:     args[0],
		Source:     models.FileSource(cleanupAddSource),
		TempFileID: cleanupAddTempID,
	}
	if cmd.Flags().Changed("path") {
		path := cleanupAddPath
		f.Filepath = &path
	}
	if cmd.Flags().Changed("embedded") {
		embedded := cleanupAddEmbedded
		f.Embedded = &embedded
	}

	if err := database.AddPendingFile(f); err != nil {
		return trackCLIError("cleanup add", fmt.Errorf("queue file: %w", err))
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Queued %s\n", f.FileID)
	return nil
}

func runCleanupImport(cmd *cobra.Command, args []string) error {
	raw, err := readInput(cmd, args[0])
	if err != nil {
		return trackCLIError("cleanup import", err)
	}
	files, err := cleanup.Decode(string(raw))
	if err != nil {
		return trackCLIError("cleanup import", err)
	}

	database, err := openDB("cleanup import")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	err = database.Transaction(func(tx *db.DB) error {
		for key, f := range files {
			if f.FileID == "" {
				f.FileID = key
			}
			if err := tx.AddPendingFile(&f); err != nil {
				return fmt.Errorf("queue %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return trackCLIError("cleanup import", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Queued %d files\n", len(files))
	return nil
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func runCleanupList(cmd *cobra.Command, args []string) error {
	database, err := openDB("cleanup list")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	files, err := database.ListPendingFiles()
	if err != nil {
		return trackCLIError("cleanup list", fmt.Errorf("list pending files: %w", err))
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		_, _ = fmt.Fprintln(out, "No files queued.")
		return nil
	}

	byID := make(map[string]models.PendingFile, len(files))
	for _, f := range files {
		byID[f.FileID] = f
	}
	eligible := make(map[string]bool)
	for _, req := range cleanup.Select(byID) {
		eligible[req.FileID] = true
	}

	_, _ = fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Queued files (%d)", len(files))))
	for _, f := range files {
		path := "-"
		if f.Filepath != nil {
			path = *f.Filepath
		}
		status := mutedStyle.Render("kept")
		if eligible[f.FileID] {
			status = warnStyle.Render("delete")
		}
		_, _ = fmt.Fprintf(out, "  %-24s %-8s %-40s %s\n", f.FileID, f.Source, path, status)
	}
	return nil
}

func runCleanupRun(cmd *cobra.Command, args []string) error {
	database, err := openDB("cleanup run")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deleter := &cleanup.LocalDeleter{Root: cfg.Cleanup.UploadsDir}
	n, err := cleanup.Run(ctx, database, deleter)
	if err != nil {
		return trackCLIError("cleanup run", err)
	}

	out := cmd.OutOrStdout()
	if n == 0 && len(deleter.Skipped) == 0 {
		_, _ = fmt.Fprintln(out, "Nothing to delete.")
		return nil
	}
	_, _ = fmt.Fprintf(out, "%s %d\n", successStyle.Render("Deleted temporary files:"), n)
	for _, f := range deleter.Skipped {
		_, _ = fmt.Fprintf(out, "  %s %s (%s, still queued)\n", mutedStyle.Render("skipped"), f.FileID, f.Source)
	}
	return nil
}
