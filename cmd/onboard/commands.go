package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/onboard/internal/config"
	"github.com/muurk/onboard/internal/dashboard"
	"github.com/muurk/onboard/internal/logging"
	"github.com/muurk/onboard/internal/onboarding"
	"github.com/muurk/onboard/internal/storage"
	"github.com/muurk/onboard/internal/ui"
	"github.com/muurk/onboard/internal/wizard/tui"
)

// Global flags
var (
	configPath  string
	storeKind   string
	dataDir     string
	dbPath      string
	storageKey  string
	logLevel    string
	logFile     string
	renderWidth int

	// Resolved by setup before any command runs
	settings *config.Settings
)

// Command flags
var (
	outputFormat string
	rawOutput    bool
	assumeYes    bool
)

// stepNames label the wizard steps in CLI output.
var stepNames = []string{"Personal info", "Business info", "Preferences"}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Settings file (default: user config dir)")
	pf.StringVar(&storeKind, "store", "", "Storage backend (file, sqlite, memory)")
	pf.StringVar(&dataDir, "data-dir", "", "Directory for stored data")
	pf.StringVar(&dbPath, "db", "", "SQLite database file (sqlite backend only)")
	pf.StringVar(&storageKey, "key", "", "Storage slot key")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

// setup resolves settings and starts logging. It runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd.Flags())
	if err != nil {
		return err
	}
	settings = s

	if err := logging.InitializeWithOptions(logOptions(s, !cmd.HasParent())); err != nil {
		return err
	}
	logging.Debug("Settings resolved",
		zap.String("command", cmd.Name()),
		zap.String("store", s.Storage.Backend),
		zap.String("key", s.Storage.Key),
	)
	return nil
}

// logOptions maps settings to logging options. The wizard runs on the
// alternate screen, so when it logs without a file the output goes to
// DefaultLogFile in the data directory instead of stderr.
func logOptions(s *config.Settings, wizard bool) logging.Options {
	opts := logging.Options{Level: s.Logging.Level, File: s.Logging.File}
	if wizard && opts.Level != "" && opts.File == "" {
		opts.File = filepath.Join(s.Storage.DataDir, logging.DefaultLogFile)
	}
	return opts
}

// resolveSettings layers file, environment and flags, in that order.
func resolveSettings(flags *pflag.FlagSet) (*config.Settings, error) {
	path := configPath
	if path == "" {
		p, err := config.GetConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	s, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, err
	}
	applyFlags(flags, s)

	if _, err := storage.ParseKind(s.Storage.Backend); err != nil {
		return nil, err
	}
	return s, nil
}

func applyFlags(flags *pflag.FlagSet, s *config.Settings) {
	set := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	set("store", &s.Storage.Backend, storeKind)
	set("data-dir", &s.Storage.DataDir, dataDir)
	set("db", &s.Storage.DBPath, dbPath)
	set("key", &s.Storage.Key, storageKey)
	set("log-level", &s.Logging.Level, logLevel)
	set("log-file", &s.Logging.File, logFile)
}

// openSlot opens the configured backend and binds the configured key.
// Callers close the slot's backend when done.
func openSlot(s *config.Settings) (*storage.Slot, error) {
	kind, err := storage.ParseKind(s.Storage.Backend)
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(storage.Options{
		Kind: kind,
		Dir:  s.Storage.DataDir,
		Path: s.Storage.DBPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", kind, err)
	}
	return storage.NewSlot(backend, s.Storage.Key), nil
}

func closeSlot(slot *storage.Slot) {
	if err := slot.Backend().Close(); err != nil {
		logging.Warn("Failed to close storage", zap.Error(err))
	}
}

// storageParams describes where the record lives, for command headers.
func storageParams(slot *storage.Slot) []ui.Param {
	params := []ui.Param{
		{Key: "Store", Value: slot.Backend().Name()},
		{Key: "Key", Value: slot.Key()},
	}
	switch b := slot.Backend().(type) {
	case *storage.FileBackend:
		params = append(params, ui.Param{Key: "Location", Value: b.Dir()})
	case *storage.SQLiteBackend:
		params = append(params, ui.Param{Key: "Location", Value: b.Path()})
	}
	return params
}

// runWizard launches the interactive TUI
func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	slot, err := openSlot(settings)
	if err != nil {
		return err
	}
	defer closeSlot(slot)

	ctrl, err := onboarding.Open(ctx, slot)
	if err != nil {
		return err
	}
	if slot.Backend().Name() == string(storage.KindMemory) {
		logging.Warn("Using memory storage; onboarding data is lost on exit")
	}

	p := tea.NewProgram(tui.NewAppModel(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

// statusCmd prints the saved onboarding record
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show saved onboarding data",
	Long: `Display the onboarding record held in the storage slot.

The detailed view lists each wizard step and whether the saved record
passes its checks. JSON and YAML output print the record itself for
scripting. --raw prints the stored bytes without decoding them.`,
	Example: `  # Human readable summary
  onboard status

  # JSON output for scripting
  onboard status --format json

  # Inspect a sqlite store
  onboard status --store sqlite --raw`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := openSlot(settings)
		if err != nil {
			return err
		}
		defer closeSlot(slot)

		return writeStatus(cmd.Context(), ui.NewPrinter(cmd.OutOrStdout()), slot, outputFormat, rawOutput)
	},
}

func init() {
	statusCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json, yaml)")
	statusCmd.Flags().BoolVar(&rawOutput, "raw", false, "Print the stored bytes as-is")
}

// statusReport is the machine-readable form of `onboard status`.
type statusReport struct {
	Backend  string               `json:"backend" yaml:"backend"`
	Key      string               `json:"key" yaml:"key"`
	Found    bool                 `json:"found" yaml:"found"`
	Complete bool                 `json:"complete" yaml:"complete"`
	Record   *onboarding.FormData `json:"record,omitempty" yaml:"record,omitempty"`
}

func writeStatus(ctx context.Context, p *ui.Printer, slot *storage.Slot, format string, raw bool) error {
	if raw {
		return writeRawStatus(ctx, p, slot)
	}

	data, found, err := slot.Load(ctx)
	if err != nil {
		return err
	}

	report := statusReport{
		Backend:  slot.Backend().Name(),
		Key:      slot.Key(),
		Found:    found,
		Complete: found && data.IsComplete,
	}
	if found {
		report.Record = &data
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		p.Println(string(out))
		return nil
	case "yaml":
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		p.Print(string(out))
		return nil
	case "detailed":
	default:
		return fmt.Errorf("unknown format %q (expected detailed, json or yaml)", format)
	}

	p.PrintHeader("Onboarding status", "onboard status", storageParams(slot)...)

	if !report.Complete {
		p.PrintWarning("Onboarding not completed",
			ui.Param{Key: "Next", Value: "run `onboard` to start the wizard"},
		)
		return nil
	}

	prog := ui.NewProgress("", stepNames...).SetWidth(p.Width())
	prog.ShowBar = false
	for step := onboarding.StepPersonal; step <= onboarding.TotalSteps; step++ {
		errs := onboarding.Validate(step, data)
		if errs.Empty() {
			prog.CompleteStep(step, "")
			continue
		}
		prog.FailStep(step, errs.Get(errs.Fields()[0]))
	}
	p.Println(prog.Render())
	p.Newline()

	p.PrintSuccess("Onboarding complete", recordDetails(data)...)
	return nil
}

func writeRawStatus(ctx context.Context, p *ui.Printer, slot *storage.Slot) error {
	raw, err := slot.Backend().Get(ctx, slot.Key())
	if errors.Is(err, storage.ErrNotFound) {
		p.PrintWarning("Nothing stored", ui.Param{Key: "Key", Value: slot.Key()})
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read slot %q: %w", slot.Key(), err)
	}
	p.PrintRaw(fmt.Sprintf("%s (%d bytes)", slot.Key(), len(raw)), string(raw))
	return nil
}

// recordDetails lists the record's fields with option labels resolved
func recordDetails(d onboarding.FormData) []ui.Param {
	return []ui.Param{
		{Key: onboarding.FieldName.Label(), Value: d.Name},
		{Key: onboarding.FieldEmail.Label(), Value: d.Email},
		{Key: onboarding.FieldCompanyName.Label(), Value: d.CompanyName},
		{Key: onboarding.FieldIndustry.Label(), Value: onboarding.OptionLabel(onboarding.IndustryOptions, d.Industry)},
		{Key: onboarding.FieldCompanySize.Label(), Value: onboarding.OptionLabel(onboarding.CompanySizeOptions, d.CompanySize)},
		{Key: onboarding.FieldTheme.Label(), Value: string(d.EffectiveTheme())},
		{Key: onboarding.FieldDashboardLayout.Label(), Value: string(d.EffectiveLayout())},
	}
}

// dashboardCmd prints the dashboard once
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard",
	Long: `Render the dashboard for the saved onboarding record and exit.

Fails when onboarding has not been completed yet.`,
	Example: `  # Print at the terminal width
  onboard dashboard

  # Fixed width, e.g. for a screenshot
  onboard dashboard --width 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := openSlot(settings)
		if err != nil {
			return err
		}
		defer closeSlot(slot)

		width := renderWidth
		if width <= 0 {
			width = dashboard.DefaultWidth
			if ui.IsTerminal() {
				width = ui.GetTerminalWidth()
			}
		}
		return writeDashboard(cmd.Context(), cmd.OutOrStdout(), slot, width)
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&renderWidth, "width", 0, "Render width (default: terminal width)")
}

func writeDashboard(ctx context.Context, w io.Writer, slot *storage.Slot, width int) error {
	ctrl, err := onboarding.Open(ctx, slot)
	if err != nil {
		return err
	}
	if ctrl.Mode() != onboarding.ModeDashboard {
		return onboarding.NewStateError(onboarding.ErrNotComplete, "run `onboard` to start the wizard")
	}
	_, err = fmt.Fprintln(w, dashboard.Render(ctrl.Data(), width))
	return err
}

// resetCmd clears the storage slot
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved onboarding data",
	Long: `Delete the saved onboarding record so the next launch starts the
wizard again at step 1.

You are asked to type RESET to confirm unless --yes is given.`,
	Example: `  # Interactive confirmation
  onboard reset

  # Non-interactive, e.g. in scripts
  onboard reset --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := openSlot(settings)
		if err != nil {
			return err
		}
		defer closeSlot(slot)

		return runReset(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), slot, assumeYes, 0)
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

// runReset clears the slot through the controller. A declined confirmation
// is not an error. width <= 0 uses the terminal width.
func runReset(ctx context.Context, in io.Reader, out io.Writer, slot *storage.Slot, yes bool, width int) error {
	if width <= 0 {
		width = ui.GetTerminalWidth()
	}
	if !yes && !ui.Confirm(in, out, width, ui.ResetConfirmation(slot.Key())) {
		return nil
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:     "Reset onboarding",
		Command:   "onboard reset",
		Params:    storageParams(slot),
		StepNames: []string{"Read saved record", "Clear record", "Verify slot is empty"},
		Troubleshooting: []string{
			"Check that the data directory is writable",
			"Run with --log-level debug for storage details",
		},
		Output: out,
		Width:  width,
	})

	return runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
		onStep(1, ui.StepRunning, "")
		ctrl, err := onboarding.Open(ctx, slot)
		if err != nil {
			onStep(1, ui.StepFailed, "")
			return nil, err
		}
		was := "wizard not completed"
		if ctrl.Mode() == onboarding.ModeDashboard {
			was = "completed by " + ctrl.Data().Name
		}
		onStep(1, ui.StepComplete, was)

		onStep(2, ui.StepRunning, "")
		if err := ctrl.Reset(ctx); err != nil {
			onStep(2, ui.StepFailed, onboarding.GetShortErrorMessage(err))
			return nil, err
		}
		onStep(2, ui.StepComplete, "")

		onStep(3, ui.StepRunning, "")
		if _, found, err := slot.Load(ctx); err != nil || found {
			onStep(3, ui.StepFailed, "")
			if err == nil {
				err = fmt.Errorf("slot %q still holds a record", slot.Key())
			}
			return nil, err
		}
		onStep(3, ui.StepComplete, "")

		return []ui.Param{{Key: "Previously", Value: was}}, nil
	})
}

// configCmd groups settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print effective settings",
	Long: `Print the settings in effect after applying the settings file,
ONBOARD_* environment variables and command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default settings file",
	Long:  `Create a settings file with default values. An existing file is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			path = p
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		created, err := config.CreateDefaultConfig(path)
		if err != nil {
			p.PrintError("Settings file not written", err, []string{"Check that the config directory is writable"})
			return err
		}
		if !created {
			p.PrintWarning("Settings file already exists", ui.Param{Key: "Path", Value: path})
			return nil
		}
		p.PrintSuccess("Settings file written", ui.Param{Key: "Path", Value: path})
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
