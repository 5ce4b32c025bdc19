package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig holds configuration for a multi-step command
type RunnerConfig struct {
	Title           string    // Command title (e.g., "Reset onboarding")
	Command         string    // Full command (e.g., "onboard reset")
	Params          []Param   // Parameters to display in header
	StepNames       []string  // Names for each step
	Troubleshooting []string  // Tips shown when the operation fails
	Output          io.Writer // Output writer (default: os.Stdout)
	Width           int       // Overrides the detected terminal width when > 0
}

// Runner orchestrates the UI for a multi-step command.
// It manages the header → progress → result flow and provides
// callbacks for reporting progress.
type Runner struct {
	config   RunnerConfig
	header   *Header
	progress *Progress
	output   io.Writer
	width    int
}

// NewRunner creates a new runner
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()
	if config.Width > 0 {
		width = max(config.Width, MinTerminalWidth)
	}

	var prog *Progress
	if len(config.StepNames) > 0 {
		prog = NewProgress("", config.StepNames...).SetWidth(width)
	}

	return &Runner{
		config:   config,
		header:   NewHeader(config.Title, config.Command, config.Params...).SetWidth(width),
		progress: prog,
		output:   config.Output,
		width:    width,
	}
}

// Operation is the work a Runner executes. It reports progress through
// onStep and returns result details to show on success.
type Operation func(ctx context.Context, onStep StepCallback) ([]Param, error)

// Run executes op with UI updates: header first, then one line per finished
// step, then a result box.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	start := time.Now()

	r.println(r.header.Render())
	r.println("")

	details, err := op(ctx, r.stepCallback())
	duration := time.Since(start).Round(time.Millisecond)

	r.println("")
	if err != nil {
		result := NewFailureResult(r.config.Title+" failed", err, r.config.Troubleshooting)
		r.println(result.SetWidth(r.width).Render())
		return err
	}

	details = append(details, Param{Key: "Duration", Value: duration.String()})
	result := NewSuccessResult(r.config.Title+" complete", details...)
	r.println(result.SetWidth(r.width).Render())
	return nil
}

func (r *Runner) stepCallback() StepCallback {
	return func(stepNumber int, status StepStatus, message string) {
		if r.progress == nil || stepNumber < 1 || stepNumber > len(r.progress.Steps) {
			return
		}
		r.progress.UpdateStep(stepNumber, status, message)

		line := r.progress.renderStepLine(r.progress.Steps[stepNumber-1])
		switch status {
		case StepRunning:
			// Overwritten when the step finishes
			_, _ = fmt.Fprint(r.output, line+"\r")
		default:
			r.println(line)
		}
	}
}

func (r *Runner) println(s string) {
	_, _ = fmt.Fprintln(r.output, s)
}
