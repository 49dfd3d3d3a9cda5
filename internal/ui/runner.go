package ui

import (
	"fmt"
	"io"
	"os"
	"time"
)

// RunnerConfig holds configuration for one command execution
type RunnerConfig struct {
	Title     string    // Command title (e.g., "Preferences Probe")
	Command   string    // Full command (e.g., "snesprefs probe")
	Params    []Param   // Parameters to display in header
	StepNames []string  // One step per searched location
	Verbose   bool      // Whether to show the raw document
	MaxLines  int       // Document lines shown in verbose mode (0 = all)
	Output    io.Writer // Output writer (default: os.Stdout)
}

// Runner orchestrates the UI for a command: header, then one line per
// finished step, then a result box.
type Runner struct {
	config    RunnerConfig
	header    *Header
	progress  *Progress
	output    io.Writer
	document  *Document
	startTime time.Time
	width     int
}

// NewRunner creates a new runner for a command
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	header := NewHeader(config.Title, config.Command, config.Params...)
	header.SetWidth(width)

	var progress *Progress
	if len(config.StepNames) > 0 {
		progress = NewProgress(config.StepNames).SetWidth(width)
	}

	return &Runner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// SetWidth overrides the detected terminal width
func (r *Runner) SetWidth(width int) *Runner {
	r.width = width
	r.header.SetWidth(width)
	if r.progress != nil {
		r.progress.SetWidth(width)
	}
	return r
}

// Operation is the work a Runner wraps. It reports progress through onStep
// and returns the details to show in the success box.
type Operation func(onStep StepCallback) ([]Param, error)

// Run prints the header, executes operation and prints its result.
func (r *Runner) Run(operation Operation) error {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := operation(r.createStepCallback())
	duration := time.Since(r.startTime)

	if r.progress != nil {
		_, _ = fmt.Fprintln(r.output)
		_, _ = fmt.Fprintln(r.output, r.progress.Bar())
	}

	_, _ = fmt.Fprintln(r.output)
	if err != nil {
		result := NewFailureResult(r.config.Title+" failed", err)
		result.Details = details
		result.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
	} else {
		details = append(details, Param{Key: "Duration", Value: duration.Round(time.Millisecond).String()})
		result := NewSuccessResult(r.config.Title+" complete", details...)
		result.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, result.Render())
	}

	if r.config.Verbose && r.document != nil {
		_, _ = fmt.Fprintln(r.output)
		_, _ = fmt.Fprintln(r.output, r.document.SetWidth(r.width).SetMaxLines(r.config.MaxLines).Render())
	}

	return err
}

// SetDocument stores a raw document for verbose display
func (r *Runner) SetDocument(title string, data []byte) {
	r.document = NewDocument(title, data)
}

// createStepCallback prints each step as soon as its outcome is known
func (r *Runner) createStepCallback() StepCallback {
	return func(n int, name string, status StepStatus, message string) {
		if r.progress == nil || n < 1 || n > len(r.progress.Steps) {
			return
		}
		if name != "" {
			r.progress.Steps[n-1].Name = name
		}
		r.progress.Update(n, status, message)
		if status.done() {
			_, _ = fmt.Fprintln(r.output, r.progress.Line(n))
		}
	}
}
