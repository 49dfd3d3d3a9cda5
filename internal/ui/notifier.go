package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Notifier reports save progress and outcome on a terminal. It satisfies
// the notifier interface of the prefs package.
type Notifier struct {
	out    io.Writer
	inline bool
	action string
}

// NewNotifier creates a Notifier writing to w. If w is nil, os.Stdout is
// used. When inline is true a running action is drawn without a newline and
// erased again by CancelAction, which only looks right on a terminal.
func NewNotifier(w io.Writer, inline bool) *Notifier {
	if w == nil {
		w = os.Stdout
	}
	return &Notifier{out: w, inline: inline}
}

// ShowAction displays msg until CancelAction is called
func (n *Notifier) ShowAction(msg string) {
	n.action = StepRunningStyle.PaddingLeft(2).Render(StepMarkerRunning + " " + msg)
	if n.inline {
		_, _ = fmt.Fprint(n.out, n.action)
		return
	}
	_, _ = fmt.Fprintln(n.out, n.action)
}

// CancelAction removes the running action, if any
func (n *Notifier) CancelAction() {
	if n.action == "" {
		return
	}
	if n.inline {
		_, _ = fmt.Fprint(n.out, "\r"+strings.Repeat(" ", lipgloss.Width(n.action))+"\r")
	}
	n.action = ""
}

// InfoPrompt reports a completed operation
func (n *Notifier) InfoPrompt(msg string) {
	n.CancelAction()
	_, _ = fmt.Fprintln(n.out, SuccessTitleStyle.PaddingLeft(2).Render(SuccessMarker+" "+msg))
}

// ErrorPrompt reports a failed operation
func (n *Notifier) ErrorPrompt(msg string) {
	n.CancelAction()
	_, _ = fmt.Fprintln(n.out, ErrorTitleStyle.PaddingLeft(2).Render(FailureMarker+" "+msg))
}
