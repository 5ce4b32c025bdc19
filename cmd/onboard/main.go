// Onboard is a terminal onboarding wizard.
//
// It walks a new user through three steps (personal details, business
// details and display preferences), validates each step before moving on,
// saves the finished record to a single storage slot, and from then on
// opens straight onto a mock dashboard.
//
// Usage:
//
//	onboard [command] [flags]
//
// Running without arguments launches the interactive wizard, or the
// dashboard when onboarding was already completed.
// See 'onboard --help' for available commands.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/onboard/internal/logging"
	"github.com/muurk/onboard/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Onboarding wizard",
	Long: `A terminal onboarding wizard.

Collects your name and email, your company details and your display
preferences over three validated steps, then saves them and shows a
personalised dashboard on every later launch.

If no command is specified, the wizard (or the dashboard, once
onboarding is complete) launches automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runWizard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "Output format (text, json, yaml)")
}

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Printing a version needs neither settings nor storage
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		switch versionFormat {
		case "json":
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			data, err := yaml.Marshal(info)
			if err != nil {
				return fmt.Errorf("failed to marshal YAML: %w", err)
			}
			fmt.Fprint(out, string(data))
		case "text":
			fmt.Fprintf(out, "onboard %s\n", version.Full())
		default:
			return fmt.Errorf("unknown format %q (expected text, json or yaml)", versionFormat)
		}
		return nil
	},
}
