package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/identity"
)

var (
	hashCopy       bool
	hashSaltDigest bool
)

var hashCmd = &cobra.Command{
	Use:   "hash <email>",
	Short: "Print the pseudonymous id for an email",
	Long: `Print the pseudonymous id that hits for this email are tagged with.

The email is not validated: any string produces an id.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().BoolVarP(&hashCopy, "copy", "c", false, "Copy the id to the clipboard")
	hashCmd.Flags().BoolVar(&hashSaltDigest, "salt-digest", false, "Also print the salt digest")
}

func runHash(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	id := identity.PseudonymousID(args[0])

	if hashSaltDigest {
		_, _ = fmt.Fprintf(out, "%s %s\n", mutedStyle.Render("salt digest:"), identity.DefaultHasher.SaltDigest())
	}
	_, _ = fmt.Fprintln(out, idStyle.Render(id))

	if hashCopy {
		if err := clipboard.WriteAll(id); err != nil {
			return trackCLIError("hash", fmt.Errorf("copy to clipboard: %w", err))
		}
		_, _ = fmt.Fprintln(out, mutedStyle.Render("copied to clipboard"))
	}
	return nil
}
