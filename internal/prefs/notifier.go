package prefs

// Notifier shows progress and outcome of a non-silent save. Silent saves
// never call it.
type Notifier interface {
	// ShowAction displays a message while an operation runs.
	ShowAction(msg string)
	// CancelAction removes the message shown by ShowAction.
	CancelAction()
	// InfoPrompt reports a completed operation.
	InfoPrompt(msg string)
	// ErrorPrompt reports a failed operation.
	ErrorPrompt(msg string)
}

type nopNotifier struct{}

func (nopNotifier) ShowAction(string)  {}
func (nopNotifier) CancelAction()      {}
func (nopNotifier) InfoPrompt(string)  {}
func (nopNotifier) ErrorPrompt(string) {}
