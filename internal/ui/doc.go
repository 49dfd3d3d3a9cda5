// Package ui provides terminal UI components for the snesprefs CLI.
//
// This package uses Lipgloss (and the Bubbles progress bar) to render
// polished terminal output. Unlike the interactive editor, these components
// follow a "run once and exit" pattern: they render output but don't require
// user interaction.
//
// # Architecture
//
// The UI package provides these component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list, one step per candidate location
//   - Result: Success/failure/warning boxes; failures carry troubleshooting
//     tips derived from the prefserr error category
//   - Document: Raw settings.xml box for verbose mode
//   - Tables: Settings, button mappings, corrections and probe attempts
//   - Notifier: Terminal rendition of the save notifications
//
// Commands that walk several steps use a Runner, which manages the
// header, progress and result flow:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:     "Preferences Probe",
//	    Command:   "snesprefs probe",
//	    Params:    []ui.Param{{Key: "Target", Value: "wii"}},
//	    StepNames: names,
//	})
//
//	err := runner.Run(func(onStep ui.StepCallback) ([]ui.Param, error) {
//	    onStep(1, "sd:/apps/snes9xfx/", ui.StepRejected, "no such file")
//	    return nil, nil
//	})
//
// # Logging Integration
//
// Logging is controlled via the SNESPREFS_LOG_LEVEL environment variable and
// goes to stderr, so it never interleaves with the curated output here.
package ui
