package editor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/snesprefs/internal/prefs"
	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
)

// FloatStep is how far left/right moves a float field such as the zoom.
const FloatStep = 0.01

// saveDoneMsg carries the outcome of a save started from the editor
type saveDoneMsg struct {
	err   error
	path  string
	edits int
}

// Model is the interactive settings editor. It edits the live settings of
// a Manager in place; nothing reaches storage until the user saves.
type Model struct {
	manager *prefs.Manager
	target  settings.Target
	fields  []settings.Field

	// UI state
	Width  int
	Height int

	// Navigation
	Cursor int

	// Inline editing
	Editing bool
	Input   textinput.Model

	// Overlays
	ShowingHelp        bool
	ConfirmingDefaults bool

	// Change tracking
	Modified    bool
	QuitPending bool
	Saving      bool
	Saves       int
	edits       int
	Status      string
	StatusError bool

	Help help.Model
	Keys keyMap
}

// New creates an editor over the settings held by m. Only fields that
// exist on the manager's target are listed.
func New(m *prefs.Manager) Model {
	target := m.Target()

	var fields []settings.Field
	for _, f := range m.Settings().Fields() {
		if f.Present(target) {
			fields = append(fields, f)
		}
	}

	input := textinput.New()
	input.CharLimit = settings.MaxPathLen - 1
	input.Width = 50

	return Model{
		manager: m,
		target:  target,
		fields:  fields,
		Input:   input,
		Help:    help.New(),
		Keys:    newKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Current returns the field under the cursor
func (m Model) Current() settings.Field {
	return m.fields[m.Cursor]
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case saveDoneMsg:
		m.Saving = false
		if msg.err != nil {
			m.setStatus(prefserr.GetShortErrorMessage(msg.err), true)
			return m, nil
		}
		// an edit made while the write ran is not on the card
		if msg.edits == m.edits {
			m.Modified = false
		}
		m.Saves++
		m.setStatus("✓ Preferences saved to "+msg.path, false)
		return m, nil
	}

	switch {
	case m.ShowingHelp:
		return m.updateHelp(msg)
	case m.ConfirmingDefaults:
		return m.updateConfirmDefaults(msg)
	case m.Editing:
		return m.updateEditing(msg)
	default:
		return m.updateNormalMode(msg)
	}
}

// updateNormalMode handles input when no field is being edited
func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if !key.Matches(keyMsg, m.Keys.Quit) {
		m.QuitPending = false
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		if m.Modified && !m.QuitPending && keyMsg.String() != "ctrl+c" {
			m.QuitPending = true
			m.setStatus("Unsaved changes: press q again to quit, s to save", true)
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Up):
		m.Cursor--
		if m.Cursor < 0 {
			m.Cursor = len(m.fields) - 1
		}

	case key.Matches(keyMsg, m.Keys.Down):
		m.Cursor++
		if m.Cursor >= len(m.fields) {
			m.Cursor = 0
		}

	case key.Matches(keyMsg, m.Keys.Tab):
		m.Cursor = m.nextSectionStart()

	case key.Matches(keyMsg, m.Keys.Left):
		m.step(-1)

	case key.Matches(keyMsg, m.Keys.Right):
		m.step(1)

	case key.Matches(keyMsg, m.Keys.Enter):
		f := m.Current()
		m.Editing = true
		m.Input.SetValue(f.Value())
		m.Input.CursorEnd()
		return m, m.Input.Focus()

	case key.Matches(keyMsg, m.Keys.Save):
		if m.Saving {
			return m, nil
		}
		snap, err := m.manager.PrepareSave(true)
		if err != nil {
			return m, func() tea.Msg { return saveDoneMsg{err: err} }
		}
		m.Saving = true
		m.setStatus("Saving preferences...", false)
		return m, saveCmd(m.manager, snap, m.edits)

	case key.Matches(keyMsg, m.Keys.Defaults):
		m.ConfirmingDefaults = true

	case key.Matches(keyMsg, m.Keys.Help):
		m.ShowingHelp = true
	}

	return m, nil
}

// step moves a numeric field by one unit. Text fields are left alone.
func (m *Model) step(dir int) {
	f := m.Current()
	switch f.Kind {
	case settings.KindInt:
		*f.Int += dir
	case settings.KindFloat:
		v := float64(*f.Float) + float64(dir)*FloatStep
		*f.Float = float32(math.Round(v*100) / 100)
	default:
		return
	}
	m.touch()
	m.Status = ""
}

// touch records an edit of the live settings
func (m *Model) touch() {
	m.Modified = true
	m.edits++
}

// nextSectionStart returns the index of the first field of the section
// after the current one, wrapping to the top.
func (m Model) nextSectionStart() int {
	section := m.Current().Section
	for i := m.Cursor + 1; i < len(m.fields); i++ {
		if m.fields[i].Section != section {
			return i
		}
	}
	return 0
}

// updateEditing handles input while the text input is focused
func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.stopEditing()
			return m, nil

		case "enter":
			f := m.Current()
			if err := f.Set(m.Input.Value()); err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.touch()
			m.Status = ""
			m.stopEditing()
			return m, nil

		case "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.Editing = false
	m.Input.Blur()
	m.Input.SetValue("")
}

// updateConfirmDefaults handles the restore defaults confirmation
func (m Model) updateConfirmDefaults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.manager.RestoreDefaults()
		m.ConfirmingDefaults = false
		m.touch()
		m.setStatus("Defaults restored (not saved yet)", false)
	case "n", "N", "esc", "q":
		m.ConfirmingDefaults = false
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// updateHelp closes the help overlay on any key
func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.ShowingHelp = false
	}
	return m, nil
}

func (m *Model) setStatus(s string, isErr bool) {
	m.Status = s
	m.StatusError = isErr
}

// saveCmd writes an already encoded snapshot. The command runs off the
// UI goroutine, so it must not touch the live settings.
func saveCmd(mgr *prefs.Manager, snap *prefs.Snapshot, edits int) tea.Cmd {
	return func() tea.Msg {
		err := mgr.WriteSnapshot(snap)
		return saveDoneMsg{err: err, path: snap.Dir, edits: edits}
	}
}

// invalidFields returns the names of fields the sanitizer would reset
func (m Model) invalidFields() map[string]bool {
	invalid := make(map[string]bool)
	for _, c := range settings.Sanitize(m.manager.Settings().Clone()) {
		invalid[c.Field] = true
	}
	return invalid
}

// View implements tea.Model
func (m Model) View() string {
	width, height := m.Width, m.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}

	if m.ShowingHelp {
		return RenderModal(ModalStyle.Render(m.renderHelpContent()), width, height)
	}
	if m.ConfirmingDefaults {
		return RenderModal(WarningModalStyle.Render(m.renderConfirmContent()), width, height)
	}

	// header, footer and borders take eight rows
	return RenderApplicationContainer(m.renderContent(height-8), m.Help.View(m.Keys), width, height)
}

func (m Model) renderContent(rows int) string {
	info := fmt.Sprintf("Target: %s • File: %s", m.target, m.location())
	lines := []string{ValueStyle.Render(info)}

	switch {
	case m.Status != "" && m.StatusError:
		lines = append(lines, StatusErrorStyle.Render(m.Status))
	case m.Status != "":
		lines = append(lines, StatusOKStyle.Render(m.Status))
	case m.Modified:
		lines = append(lines, ModifiedStyle.Render("⚠ MODIFIED"))
	default:
		lines = append(lines, "")
	}

	list, cursorLine := m.renderFieldList()
	if rows < 4 {
		rows = 4
	}
	avail := rows - len(lines)
	start := 0
	if cursorLine >= avail {
		start = cursorLine - avail + 1
	}
	end := start + avail
	if end > len(list) {
		end = len(list)
	}
	lines = append(lines, list[start:end]...)

	return strings.Join(lines, "\n")
}

func (m Model) location() string {
	if p := m.manager.PrefPath(); p != "" {
		return p
	}
	return "(not saved yet)"
}

// renderFieldList returns one line per section banner and field, and the
// index of the line holding the cursor.
func (m Model) renderFieldList() ([]string, int) {
	invalid := m.invalidFields()

	var lines []string
	cursorLine := 0
	section := ""
	for i, f := range m.fields {
		if f.Section != section {
			section = f.Section
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, SectionStyle.Render(section))
		}
		if i == m.Cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, m.renderField(f, i == m.Cursor, invalid[f.Name]))
	}
	return lines, cursorLine
}

// renderField renders a field as "→ Label   Value   name"
func (m Model) renderField(f settings.Field, selected, invalid bool) string {
	labelStyle, valueStyle := LabelStyle, ValueStyle
	arrow := "  "
	if selected {
		labelStyle, valueStyle = SelectedLabelStyle, SelectedValueStyle
		arrow = "→ "
	}

	value := f.Value()
	if f.Kind == settings.KindText && value == "" {
		value = "(empty)"
	}
	rendered := valueStyle.Render(value)
	if selected && m.Editing {
		rendered = m.Input.View()
	}

	parts := []string{arrow, labelStyle.Render(f.Description), rendered, "  ", NameStyle.Render(f.Name)}
	if invalid {
		parts = append(parts, " ", InvalidStyle.Render("! out of range"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func (m Model) renderHelpContent() string {
	h := m.Help
	h.ShowAll = true
	return lipgloss.JoinVertical(lipgloss.Left,
		SectionStyle.Render("KEYS"),
		"",
		h.View(m.Keys),
		"",
		NameStyle.Render("Out-of-range values are reset to defaults when saved."),
		NameStyle.Render("Press any key to close."),
	)
}

func (m Model) renderConfirmContent() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		InvalidStyle.Render("⚠ RESTORE DEFAULTS"),
		"",
		ValueStyle.Render("Every setting and button mapping will be reset."),
		ValueStyle.Render("Nothing is written until you save."),
		"",
		ValueStyle.Render("Continue? (y/n)"),
	)
}
