package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmPhrase is what the user must type to confirm a destructive operation.
const ConfirmPhrase = "RESET"

// ConfirmDangerousOperation displays a warning box on out and reads one line
// from in. It returns true only if the line is exactly phrase.
func ConfirmDangerousOperation(in io.Reader, out io.Writer, title string, warnings []string, phrase string) bool {
	width := GetTerminalWidth()

	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)),
		"",
	}
	bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
	for _, warning := range warnings {
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	_, _ = fmt.Fprintln(out, ResultBoxStyle(width, WarningColor).Render(strings.Join(lines, "\n")))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, WarningTitleStyle.Render(fmt.Sprintf("To proceed, type %q and press Enter: ", phrase)))

	input, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && input == "" {
		return false
	}

	if strings.TrimSpace(input) == phrase {
		return true
	}

	_, _ = fmt.Fprintln(out, lipgloss.NewStyle().Foreground(MutedColor).Render("  Operation cancelled."))
	_, _ = fmt.Fprintln(out)
	return false
}

// RestoreDefaultsConfirmation asks before the defaults overwrite the
// preferences file at path.
func RestoreDefaultsConfirmation(in io.Reader, out io.Writer, path string) bool {
	warnings := []string{
		"Every setting and button mapping will be reset to its default",
	}
	if path != "" {
		warnings = append(warnings, "The preferences file will be overwritten: "+path)
	} else {
		warnings = append(warnings, "A new preferences file will be created on the first writable device")
	}
	warnings = append(warnings, "Take a copy of settings.xml first if you may want it back")

	return ConfirmDangerousOperation(in, out, "RESTORE DEFAULTS", warnings, ConfirmPhrase)
}
