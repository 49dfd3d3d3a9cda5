// Snesprefs reads and writes Snes9x FX preference documents.
//
// It works on the settings.xml a Wii or GameCube build of the emulator
// keeps on its storage devices, with each console device mapped to a
// folder on this computer, e.g. the mount point of an SD card reader.
// The same probe, sanitize, migrate and save rules the emulator applies
// are used, so a document written here loads on the console unchanged.
//
// Usage:
//
//	snesprefs [command] [flags]
//
// Running without arguments shows the current preferences.
// See 'snesprefs --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/snesprefs/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snesprefs",
	Short: "Snes9x FX preferences tool",
	Long: `A standalone tool for Snes9x FX preference documents.

Finds settings.xml on the mapped console devices the way the emulator does,
shows and edits the settings, restores the factory defaults and writes the
document back where the emulator will load it.

Map the console devices to host folders once with 'snesprefs config mount',
or per run with --mount sd=/media/user/SDCARD.

If no command is specified, the current preferences are shown.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the preferences when no subcommand provided
		return runShow(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "snesprefs %s\n", version.Full())
	},
}
