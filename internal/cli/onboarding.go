package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/internal/identity"
	"github.com/asteroid-belt/ymstat/internal/onboarding"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "Manage the training course prompt",
	Long: `Manage the training course prompt shown to new users.

Answers are stored under the user's pseudonymous id.

Subcommands:
  status <email>  Show whether the prompt would open
  accept <email>  Record that the user took the course
  deny <email>    Record that the user declined the course
  later <email>   Close the prompt without recording an answer
  reset <email>   Forget the answer so the prompt opens again`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var onboardingStatusCmd = &cobra.Command{
	Use:   "status <email>",
	Short: "Show whether the prompt would open",
	Args:  cobra.ExactArgs(1),
	RunE:  withPrompt("onboarding status", runOnboardingStatus),
}

var onboardingAcceptCmd = &cobra.Command{
	Use:   "accept <email>",
	Short: "Record that the user took the course",
	Args:  cobra.ExactArgs(1),
	RunE:  withPrompt("onboarding accept", runOnboardingAccept),
}

var onboardingDenyCmd = &cobra.Command{
	Use:   "deny <email>",
	Short: "Record that the user declined the course",
	Args:  cobra.ExactArgs(1),
	RunE:  withPrompt("onboarding deny", runOnboardingDeny),
}

var onboardingLaterCmd = &cobra.Command{
	Use:   "later <email>",
	Short: "Close the prompt without recording an answer",
	Args:  cobra.ExactArgs(1),
	RunE:  withPrompt("onboarding later", runOnboardingLater),
}

var onboardingResetCmd = &cobra.Command{
	Use:   "reset <email>",
	Short: "Forget the answer so the prompt opens again",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnboardingReset,
}

func init() {
	onboardingCmd.AddCommand(onboardingStatusCmd)
	onboardingCmd.AddCommand(onboardingAcceptCmd)
	onboardingCmd.AddCommand(onboardingDenyCmd)
	onboardingCmd.AddCommand(onboardingLaterCmd)
	onboardingCmd.AddCommand(onboardingResetCmd)
}

type promptRunner func(cmd *cobra.Command, p *onboarding.Prompt, email string) error

// withPrompt opens the database and builds a Prompt for the command.
func withPrompt(name string, run promptRunner) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		database, err := openDB(name)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close() }()

		p := onboarding.NewPrompt(database, cfg.Onboarding.CourseURL)
		return trackCLIError(name, run(cmd, p, args[0]))
	}
}

func runOnboardingStatus(cmd *cobra.Command, p *onboarding.Prompt, email string) error {
	show, err := p.ShouldPrompt(email)
	if err != nil {
		return err
	}
	if show {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("prompt pending: the user has not answered yet"))
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("answered: the prompt stays closed"))
	return nil
}

func runOnboardingAccept(cmd *cobra.Command, p *onboarding.Prompt, email string) error {
	outcome, err := p.Accept(email)
	if err != nil {
		return err
	}
	printOutcome(cmd, outcome)
	return nil
}

func runOnboardingDeny(cmd *cobra.Command, p *onboarding.Prompt, email string) error {
	outcome, err := p.Deny(email)
	if err != nil {
		return err
	}
	printOutcome(cmd, outcome)
	return nil
}

func runOnboardingLater(cmd *cobra.Command, p *onboarding.Prompt, _ string) error {
	printOutcome(cmd, p.Later())
	return nil
}

func printOutcome(cmd *cobra.Command, o onboarding.Outcome) {
	out := cmd.OutOrStdout()
	switch {
	case o.OpenURL != "":
		_, _ = fmt.Fprintf(out, "%s %s\n", successStyle.Render("open course:"), o.OpenURL)
	case o.Notice != "":
		_, _ = fmt.Fprintln(out, o.Notice)
	default:
		_, _ = fmt.Fprintln(out, mutedStyle.Render("prompt closed, will show again next session"))
	}
}

func runOnboardingReset(cmd *cobra.Command, args []string) error {
	database, err := openDB("onboarding reset")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	if err := database.ResetLearning(identity.PseudonymousID(args[0])); err != nil {
		return trackCLIError("onboarding reset", fmt.Errorf("reset learning state: %w", err))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Learning answer cleared.")
	return nil
}
