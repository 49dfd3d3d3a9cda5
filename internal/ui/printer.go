package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
)

// Printer provides methods for printing UI components to a writer.
// This is the primary way commands output styled content.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
	p.Newline()
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.Println(NewSuccessResult(title, details...).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details ...Param) {
	p.Println(NewWarningResult(title, details...).SetWidth(p.width).Render())
}

// PrintFailure prints an error result box with troubleshooting tips
func (p *Printer) PrintFailure(title string, err error) {
	p.Println(NewFailureResult(title, err).SetWidth(p.width).Render())
}

// PrintDocument prints a raw document box
func (p *Printer) PrintDocument(title string, data []byte) {
	p.Println(NewDocument(title, data).SetWidth(p.width).Render())
}

// PrintSettings prints every section of s as it exists on target
func (p *Printer) PrintSettings(s *settings.Settings, target settings.Target) {
	p.Println(RenderSettings(s, target))
}

// PrintCorrections prints the values the sanitizer replaced, if any
func (p *Printer) PrintCorrections(cs []settings.Correction) {
	if len(cs) == 0 {
		return
	}
	p.Println(RenderCorrections(cs))
}

// PrintAttempts prints the candidate locations a probe tried
func (p *Printer) PrintAttempts(attempts []storage.Attempt) {
	p.Println(RenderAttempts(attempts))
}
