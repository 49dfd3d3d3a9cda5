// Package editor implements the interactive preferences editor behind
// "snesprefs edit".
//
// The editor is a Bubble Tea model over the live settings of a
// prefs.Manager. Fields are listed by section in document order, filtered
// to the manager's target. Numeric fields step with left/right, enter opens
// an inline text input for any field, s saves silently through the manager
// and reports the outcome in the status line, and d restores the factory
// defaults after a y/n confirmation. Values the sanitizer would reset are
// flagged in place; they are corrected when the document is saved.
package editor
