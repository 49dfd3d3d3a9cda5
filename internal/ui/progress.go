package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepStatus is the outcome of one searched location
type StepStatus int

const (
	StepPending  StepStatus = iota // not looked at yet
	StepRejected                   // looked at, nothing usable
	StepAccepted                   // the document came from here
	StepSkipped                    // not needed after an earlier match
)

func (s StepStatus) done() bool {
	return s != StepPending
}

// Step is one location of a search.
type Step struct {
	Name    string
	Status  StepStatus
	Message string // short reason, e.g. "Preferences file is corrupt"
}

// Progress lists the locations of a search in the order they are tried,
// with a bar showing how many have been settled.
type Progress struct {
	Steps []Step
	bar   progress.Model
}

// NewProgress creates a tracker with one pending step per name
func NewProgress(names []string) *Progress {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i].Name = name
	}
	p := &Progress{Steps: steps}
	return p.SetWidth(GetTerminalWidth())
}

// SetWidth fits the bar to width
func (p *Progress) SetWidth(width int) *Progress {
	p.bar = progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(max(20, min(50, width-20))),
	)
	return p
}

// Update records the outcome of step n (1-based). Unknown steps are ignored.
func (p *Progress) Update(n int, status StepStatus, message string) {
	if n < 1 || n > len(p.Steps) {
		return
	}
	p.Steps[n-1].Status = status
	p.Steps[n-1].Message = message
}

// Settled returns how many steps are no longer pending
func (p *Progress) Settled() int {
	n := 0
	for _, s := range p.Steps {
		if s.Status.done() {
			n++
		}
	}
	return n
}

// Fraction returns the settled share of the steps
func (p *Progress) Fraction() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	return float64(p.Settled()) / float64(len(p.Steps))
}

// Bar renders "<bar>  75%  [3/4]"
func (p *Progress) Bar() string {
	f := p.Fraction()
	return lipgloss.NewStyle().PaddingLeft(2).Render(
		fmt.Sprintf("%s  %3.0f%%  [%d/%d]", p.bar.ViewAs(f), f*100, p.Settled(), len(p.Steps)))
}

// Line renders step n as "[n/total] name   marker  (message)". Markers line
// up below each other.
func (p *Progress) Line(n int) string {
	if n < 1 || n > len(p.Steps) {
		return ""
	}
	step := p.Steps[n-1]

	marker, style := StepMarkerPending, StepPendingStyle
	switch step.Status {
	case StepAccepted:
		marker, style = StepMarkerComplete, StepCompleteStyle
	case StepRejected:
		marker, style = FailureMarker, ErrorTitleStyle
	case StepSkipped:
		marker = StepMarkerSkipped
	}

	column := 0
	for _, s := range p.Steps {
		column = max(column, lipgloss.Width(s.Name))
	}

	line := fmt.Sprintf("  [%d/%d] %s%s%s", n, len(p.Steps),
		style.Render(step.Name),
		strings.Repeat(" ", column-lipgloss.Width(step.Name)+2),
		style.Render(marker))
	if step.Message != "" {
		line += "  " + StepNoteStyle.Render("("+step.Message+")")
	}
	return line
}

// String renders every step
func (p *Progress) String() string {
	lines := make([]string, len(p.Steps))
	for i := range p.Steps {
		lines[i] = p.Line(i + 1)
	}
	return strings.Join(lines, "\n")
}

// StepCallback reports the outcome of step n. A non-empty name replaces
// the step's name.
type StepCallback func(n int, name string, status StepStatus, message string)
