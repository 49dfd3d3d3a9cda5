package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Document represents a box for displaying a raw preferences document.
// Used in verbose mode to show exactly what was read or written.
type Document struct {
	Title    string   // e.g., "settings.xml"
	Lines    []string // Document lines
	Width    int      // Terminal width
	MaxLines int      // Maximum lines to display (0 = unlimited)
}

// NewDocument creates a new document box
func NewDocument(title string, data []byte) *Document {
	content := strings.TrimRight(strings.ReplaceAll(string(data), "\t", "  "), "\n")
	return &Document{
		Title: title,
		Lines: strings.Split(content, "\n"),
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (d *Document) SetWidth(width int) *Document {
	d.Width = width
	return d
}

// SetMaxLines limits the number of lines displayed
func (d *Document) SetMaxLines(max int) *Document {
	d.MaxLines = max
	return d
}

// Render returns the styled document box as a string
func (d *Document) Render() string {
	lines := d.Lines
	if d.MaxLines > 0 && len(lines) > d.MaxLines {
		lines = append(lines[:d.MaxLines:d.MaxLines], "... (output truncated)")
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		DocumentTitleStyle.Render(d.Title),
		"",
		DocumentContentStyle.Render(strings.Join(lines, "\n")),
	)
	return DocumentBoxStyle(clampWidth(d.Width)).Render(inner)
}

// String implements fmt.Stringer
func (d *Document) String() string {
	return d.Render()
}
