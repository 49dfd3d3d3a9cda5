package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/snesprefs/internal/prefs"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
)

var english = settings.System{Language: settings.LangEnglish}

func newTestModel(t *testing.T, mountable ...int) (Model, *prefs.Manager, *storage.MemPlatform) {
	t.Helper()
	mem := storage.NewMemPlatform()
	mem.SetMountable(mountable...)
	mgr := prefs.New(mem, storage.WiiProfile(""), prefs.WithSystem(english))
	return New(mgr), mgr, mem
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func moveTo(t *testing.T, m Model, name string) Model {
	t.Helper()
	for i := 0; i < len(m.fields); i++ {
		if m.Current().Name == name {
			return m
		}
		m = press(t, m, keyDown)
	}
	t.Fatalf("field %q not listed", name)
	return m
}

func TestFieldsFollowTarget(t *testing.T) {
	mem := storage.NewMemPlatform()
	gc := New(prefs.New(mem, storage.GameCubeProfile()))
	for _, f := range gc.fields {
		if f.WiiOnly {
			t.Errorf("GameCube editor lists Wii-only field %s", f.Name)
		}
	}

	wii, _, _ := newTestModel(t)
	if len(wii.fields) != len(gc.fields)+1 {
		t.Errorf("Wii lists %d fields, GameCube %d", len(wii.fields), len(gc.fields))
	}
}

func TestNavigation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, keyUp)
	if m.Cursor != len(m.fields)-1 {
		t.Errorf("up from top: Cursor = %d, want %d", m.Cursor, len(m.fields)-1)
	}
	m = press(t, m, keyDown)
	if m.Cursor != 0 {
		t.Errorf("down from bottom: Cursor = %d, want 0", m.Cursor)
	}

	m = press(t, m, keyTab)
	if got := m.Current().Section; got != "Video" {
		t.Errorf("tab from File: section = %q, want Video", got)
	}
	if got := m.Current().Name; got != "videomode" {
		t.Errorf("tab from File: field = %q, want videomode", got)
	}

	for i := 0; i < len(settings.Sections); i++ {
		m = press(t, m, keyTab)
	}
	if m.Current().Section != "Video" {
		t.Errorf("tab did not wrap around the sections, at %q", m.Current().Section)
	}
}

func TestStepValues(t *testing.T) {
	tests := []struct {
		name  string
		field string
		keys  []tea.KeyMsg
		want  string
		mod   bool
	}{
		{name: "int right", field: "videomode", keys: []tea.KeyMsg{keyRight}, want: "1", mod: true},
		{name: "int plus", field: "MusicVolume", keys: []tea.KeyMsg{runes("+"), runes("+")}, want: "82", mod: true},
		{name: "int left", field: "xshift", keys: []tea.KeyMsg{keyLeft}, want: "-1", mod: true},
		{name: "float right", field: "zoomHor", keys: []tea.KeyMsg{keyRight}, want: "1.01", mod: true},
		{name: "float left twice", field: "zoomVert", keys: []tea.KeyMsg{keyLeft, keyLeft}, want: "0.98", mod: true},
		{name: "text ignored", field: "LoadFolder", keys: []tea.KeyMsg{keyRight}, want: "snes9xfx/roms", mod: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m = moveTo(t, m, tt.field)
			m = press(t, m, tt.keys...)

			if got := m.Current().Value(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.field, got, tt.want)
			}
			if m.Modified != tt.mod {
				t.Errorf("Modified = %v, want %v", m.Modified, tt.mod)
			}
		})
	}
}

func TestEditText(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m = moveTo(t, m, "SaveFolder")

	var cmd tea.Cmd
	m, cmd = update(t, m, keyEnter)
	if !m.Editing {
		t.Fatal("enter did not start editing")
	}
	if cmd == nil {
		t.Error("focus returned no command")
	}
	if m.Input.Value() != mgr.Settings().SaveFolder {
		t.Errorf("input starts at %q, want current value", m.Input.Value())
	}

	m = press(t, m, runes("2"))
	m = press(t, m, keyEnter)
	if m.Editing {
		t.Error("enter did not finish editing")
	}
	if got, want := mgr.Settings().SaveFolder, "snes9xfx/saves2"; got != want {
		t.Errorf("SaveFolder = %q, want %q", got, want)
	}
	if !m.Modified {
		t.Error("edit did not mark the settings modified")
	}
}

func TestEditCancelAndReject(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m = moveTo(t, m, "videomode")

	m = press(t, m, keyEnter)
	m.Input.SetValue("4")
	m = press(t, m, keyEsc)
	if m.Editing || mgr.Settings().VideoMode != 0 || m.Modified {
		t.Errorf("esc kept the edit: editing=%v videomode=%d", m.Editing, mgr.Settings().VideoMode)
	}

	m = press(t, m, keyEnter)
	m.Input.SetValue("four")
	m = press(t, m, keyEnter)
	if !m.Editing {
		t.Error("invalid number closed the editor")
	}
	if !m.StatusError || !strings.Contains(m.Status, "not an integer") {
		t.Errorf("Status = %q (error %v)", m.Status, m.StatusError)
	}
	if mgr.Settings().VideoMode != 0 {
		t.Errorf("invalid number stored: %d", mgr.Settings().VideoMode)
	}
}

func TestSave(t *testing.T) {
	t.Run("writes the card", func(t *testing.T) {
		m, _, mem := newTestModel(t, settings.DeviceSD)
		m = moveTo(t, m, "videomode")
		m = press(t, m, keyRight)

		var cmd tea.Cmd
		m, cmd = update(t, m, runes("s"))
		if cmd == nil {
			t.Fatal("s returned no command")
		}
		m, _ = update(t, m, cmd())

		if m.Modified || m.Saves != 1 || m.StatusError {
			t.Errorf("after save: modified=%v saves=%d status=%q", m.Modified, m.Saves, m.Status)
		}
		data, ok := mem.File("sd:/snes9xfx/settings.xml")
		if !ok {
			t.Fatal("settings.xml not written")
		}
		if !strings.Contains(string(data), `name="videomode" value="1"`) {
			t.Error("saved document does not carry the edited value")
		}
		if len(mem.CallsWith("mount")) == 0 {
			t.Error("save did not mount a device")
		}
	})

	t.Run("reports failure", func(t *testing.T) {
		m, _, _ := newTestModel(t)
		m = press(t, m, keyRight)

		var cmd tea.Cmd
		m, cmd = update(t, m, runes("s"))
		m, _ = update(t, m, cmd())

		if !m.StatusError || m.Status != "No storage device available" {
			t.Errorf("Status = %q (error %v)", m.Status, m.StatusError)
		}
		if !m.Modified || m.Saves != 0 {
			t.Errorf("failed save cleared state: modified=%v saves=%d", m.Modified, m.Saves)
		}
	})
}

// TestEditDuringSave tests that an edit made while a save is being written
// stays out of the saved document and keeps the model modified
func TestEditDuringSave(t *testing.T) {
	m, mgr, mem := newTestModel(t, settings.DeviceSD)
	m = moveTo(t, m, "videomode")
	m = press(t, m, keyRight)

	m, cmd := update(t, m, runes("s"))
	if cmd == nil || !m.Saving {
		t.Fatal("s did not start a save")
	}

	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	m = press(t, m, keyRight)
	m, _ = update(t, m, <-done)

	if mgr.Settings().VideoMode != 2 {
		t.Errorf("live videomode = %d, want 2", mgr.Settings().VideoMode)
	}
	if !m.Modified {
		t.Error("edit made during the save was marked saved")
	}
	if m.Saving || m.Saves != 1 {
		t.Errorf("after save: saving=%v saves=%d", m.Saving, m.Saves)
	}
	data, _ := mem.File("sd:/snes9xfx/settings.xml")
	if !strings.Contains(string(data), `name="videomode" value="1"`) {
		t.Error("saved document does not hold the value at the time of s")
	}

	if _, cmd := update(t, m, runes("q")); cmd != nil {
		t.Error("q quit with the later edit unsaved")
	}
}

// TestSecondSaveWaits tests that s is ignored while a save is running
func TestSecondSaveWaits(t *testing.T) {
	m, _, _ := newTestModel(t, settings.DeviceSD)
	m = press(t, m, keyRight)

	m, first := update(t, m, runes("s"))
	m, second := update(t, m, runes("s"))
	if second != nil {
		t.Error("second s started another save")
	}
	m, _ = update(t, m, first())
	if m.Modified || m.Saving {
		t.Errorf("after save: modified=%v saving=%v", m.Modified, m.Saving)
	}
}

func TestRestoreDefaults(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	live := mgr.Settings()
	m = moveTo(t, m, "MusicVolume")
	m = press(t, m, keyLeft)

	m = press(t, m, runes("d"), runes("n"))
	if m.ConfirmingDefaults || live.MusicVolume != 79 {
		t.Fatalf("n did not cancel: confirming=%v volume=%d", m.ConfirmingDefaults, live.MusicVolume)
	}

	m = press(t, m, runes("d"))
	if !m.ConfirmingDefaults {
		t.Fatal("d did not ask for confirmation")
	}
	m = press(t, m, runes("y"))

	want := settings.DefaultSettings(settings.TargetWii, english)
	if *live != *want {
		t.Errorf("defaults not restored:\n%s", settings.FormatDiff(want, live))
	}
	if mgr.Settings() != live {
		t.Error("RestoreDefaults replaced the settings pointer")
	}
	if m.Current().Name != "MusicVolume" || m.Current().Value() != "80" {
		t.Errorf("field view stale after defaults: %s = %s", m.Current().Name, m.Current().Value())
	}
}

func TestQuit(t *testing.T) {
	isQuit := func(cmd tea.Cmd) bool {
		if cmd == nil {
			return false
		}
		_, ok := cmd().(tea.QuitMsg)
		return ok
	}

	m, _, _ := newTestModel(t)
	if _, cmd := update(t, m, runes("q")); !isQuit(cmd) {
		t.Error("q on unmodified settings did not quit")
	}

	m = press(t, m, keyRight)
	m, cmd := update(t, m, runes("q"))
	if isQuit(cmd) || !m.QuitPending {
		t.Error("first q with unsaved changes quit")
	}
	m = press(t, m, keyDown)
	if m.QuitPending {
		t.Error("other key did not clear the pending quit")
	}
	m, _ = update(t, m, runes("q"))
	if _, cmd := update(t, m, runes("q")); !isQuit(cmd) {
		t.Error("second q did not quit")
	}

	if _, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Error("ctrl+c did not quit")
	}
}

func TestView(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	for _, want := range []string{AppName, "Target: wii", "(not saved yet)", "File", "AutoLoad", "→"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	mgr.Settings().VideoMode = 9
	m = press(t, m, keyTab)
	if !strings.Contains(m.View(), "out of range") {
		t.Error("out of range value not flagged")
	}

	m = press(t, m, runes("?"))
	if !m.ShowingHelp || !strings.Contains(m.View(), "KEYS") {
		t.Error("help overlay not shown")
	}
	m = press(t, m, keyEsc)
	if m.ShowingHelp {
		t.Error("help overlay not closed")
	}

	m = press(t, m, runes("d"))
	if !strings.Contains(m.View(), "RESTORE DEFAULTS") {
		t.Error("confirmation overlay not shown")
	}
}

func TestViewScrollsToCursor(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	m = moveTo(t, m, "FastForwardButton")

	out := m.View()
	if !strings.Contains(out, "FastForwardButton") {
		t.Error("cursor field scrolled out of view")
	}
	if strings.Contains(out, "AutoLoad") {
		t.Error("top of the list still visible on a short terminal")
	}
}
