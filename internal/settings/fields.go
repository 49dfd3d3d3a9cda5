package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the storage type of a scalar field.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Section is a documentation group of the preferences document.
type Section struct {
	Name        string
	Description string
}

// Sections in document order.
var Sections = []Section{
	{"File", "File Settings"},
	{"Video", "Video Settings"},
	{"Audio", "Audio Settings"},
	{"Emulation Hacks", "Emulation Hacks Settings"},
	{"Emulation", "Emulation Settings"},
	{"Menu", "Menu Settings"},
	{"Controller", "Controller Settings"},
}

// Field is a named view onto one scalar of a Settings value. Exactly one of
// Int, Float or Text is set, matching Kind.
type Field struct {
	Name        string
	Description string
	Section     string
	Kind        Kind
	WiiOnly     bool

	Int   *int
	Float *float32
	Text  *string
}

// Value renders the field the way the preferences document stores it.
func (f Field) Value() string {
	switch f.Kind {
	case KindInt:
		return strconv.Itoa(*f.Int)
	case KindFloat:
		return strconv.FormatFloat(float64(*f.Float), 'f', 2, 32)
	default:
		return *f.Text
	}
}

// Set parses value strictly and stores it. Text is cropped to capacity.
func (f Field) Set(value string) error {
	switch f.Kind {
	case KindInt:
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", f.Name, value)
		}
		*f.Int = v
	case KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", f.Name, value)
		}
		*f.Float = float32(v)
	default:
		*f.Text = Bound(value)
	}
	return nil
}

// Present reports whether the field exists in documents for target.
func (f Field) Present(target Target) bool {
	return !f.WiiOnly || target == TargetWii
}

// Fields returns the scalar fields of s in document order.
func (s *Settings) Fields() []Field {
	i := func(section, name, desc string, p *int) Field {
		return Field{Name: name, Description: desc, Section: section, Kind: KindInt, Int: p}
	}
	f := func(section, name, desc string, p *float32) Field {
		return Field{Name: name, Description: desc, Section: section, Kind: KindFloat, Float: p}
	}
	t := func(section, name, desc string, p *string) Field {
		return Field{Name: name, Description: desc, Section: section, Kind: KindText, Text: p}
	}

	wiimote := i("Menu", "WiimoteOrientation", "Wiimote Orientation", &s.WiimoteOrientation)
	wiimote.WiiOnly = true

	return []Field{
		i("File", "AutoLoad", "Auto Load", &s.AutoLoad),
		i("File", "AutoSave", "Auto Save", &s.AutoSave),
		i("File", "LoadMethod", "Load Method", &s.LoadMethod),
		i("File", "SaveMethod", "Save Method", &s.SaveMethod),
		t("File", "LoadFolder", "Load Folder", &s.LoadFolder),
		t("File", "LastFileLoaded", "Last File Loaded", &s.LastFileLoaded),
		t("File", "SaveFolder", "Save Folder", &s.SaveFolder),
		t("File", "CheatFolder", "Cheats Folder", &s.CheatFolder),
		t("File", "ScreenshotsFolder", "Screenshots Folder", &s.ScreenshotsFolder),
		t("File", "CoverFolder", "Covers Folder", &s.CoverFolder),
		t("File", "ArtworkFolder", "Artwork Folder", &s.ArtworkFolder),

		i("Video", "videomode", "Video Mode", &s.VideoMode),
		f("Video", "zoomHor", "Horizontal Zoom Level", &s.ZoomHor),
		f("Video", "zoomVert", "Vertical Zoom Level", &s.ZoomVert),
		i("Video", "render", "Rendering", &s.Render),
		i("Video", "bilinear", "Bilinear Filtering", &s.Bilinear),
		i("Video", "aspect", "Aspect Ratio", &s.Aspect),
		i("Video", "VideoFilter", "Video Filter", &s.VideoFilter),
		i("Video", "HiResMode", "Hi-Res Mode", &s.HiResMode),
		i("Video", "FrameSkip", "Frame Skipping", &s.FrameSkip),
		i("Video", "ShowFrameRate", "Show Frame Rate", &s.ShowFrameRate),
		i("Video", "crosshair", "Show Crosshair", &s.Crosshair),
		i("Video", "xshift", "Horizontal Video Shift", &s.XShift),
		i("Video", "yshift", "Vertical Video Shift", &s.YShift),

		i("Audio", "MuteSound", "Mute Sound", &s.MuteSound),
		i("Audio", "Interpolation", "Sound Interpolation", &s.Interpolation),

		i("Emulation Hacks", "sfxOverclock", "SuperFX Overclocking", &s.SFXOverclock),
		i("Emulation Hacks", "cpuOverclock", "CPU Overclocking", &s.CPUOverclock),
		i("Emulation Hacks", "NoSpriteLimit", "No Sprite Limit", &s.NoSpriteLimit),

		i("Emulation", "Satellaview", "Satellaview BIOS", &s.Satellaview),

		wiimote,
		i("Menu", "ExitAction", "Exit Action", &s.ExitAction),
		i("Menu", "MusicVolume", "Music Volume", &s.MusicVolume),
		i("Menu", "SFXVolume", "Sound Effects Volume", &s.SFXVolume),
		i("Menu", "language", "Language", &s.Language),
		i("Menu", "PreviewImage", "Preview Image", &s.PreviewImage),
		i("Menu", "HideSRAMSaving", "Hide SRAM Saving", &s.HideSRAMSaving),

		i("Controller", "Controller", "Controller", &s.Controller),
		i("Controller", "FastForward", "Fast Forward", &s.FastForward),
		i("Controller", "FastForwardButton", "Fast Forward Button", &s.FastForwardButton),
	}
}

// Field looks a scalar field up by its document name. Matching is exact
// first, then case-insensitive, so the CLI accepts "VideoMode".
func (s *Settings) Field(name string) (Field, bool) {
	fields := s.Fields()
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// ControllerMap is a named view onto one button assignment array.
type ControllerMap struct {
	Name        string
	Description string
	Section     string
	Class       int
	Type        int
	WiiOnly     bool
	Buttons     *[MaxJP]uint32
}

// Present reports whether the mapping exists in documents for target.
func (c ControllerMap) Present(target Target) bool {
	return !c.WiiOnly || target == TargetWii
}

var classNames = [CtrlClassCount]struct{ id, label string }{
	CtrlPad:   {"pad", "SNES Pad"},
	CtrlScope: {"scope", "Superscope"},
	CtrlMouse: {"mouse", "Mouse"},
	CtrlJust:  {"just", "Justifier"},
}

var typeNames = [ControllerTypeCount]struct{ id, label string }{
	CtrlrGCPad:   {"gcpad", "GameCube Controller"},
	CtrlrWiimote: {"wiimote", "Wiimote"},
	CtrlrClassic: {"classic", "Classic Controller"},
	CtrlrWUPC:    {"wupc", "Wii U Pro Controller"},
	CtrlrWiiDRC:  {"wiidrc", "Wii U Gamepad"},
	CtrlrNunchuk: {"nunchuk", "Nunchuk + Wiimote"},
}

// controllerCombos lists the mappings that exist on any target, in document order.
var controllerCombos = [][2]int{
	{CtrlPad, CtrlrGCPad},
	{CtrlPad, CtrlrWiimote},
	{CtrlPad, CtrlrClassic},
	{CtrlPad, CtrlrWUPC},
	{CtrlPad, CtrlrWiiDRC},
	{CtrlPad, CtrlrNunchuk},
	{CtrlScope, CtrlrGCPad},
	{CtrlScope, CtrlrWiimote},
	{CtrlMouse, CtrlrGCPad},
	{CtrlMouse, CtrlrWiimote},
	{CtrlJust, CtrlrGCPad},
	{CtrlJust, CtrlrWiimote},
}

// ControllerMaps returns every button mapping of s in document order.
func (s *Settings) ControllerMaps() []ControllerMap {
	maps := make([]ControllerMap, 0, len(controllerCombos))
	for _, c := range controllerCombos {
		class, typ := c[0], c[1]
		maps = append(maps, ControllerMap{
			Name:        fmt.Sprintf("btnmap_%s_%s", classNames[class].id, typeNames[typ].id),
			Description: fmt.Sprintf("%s - %s", classNames[class].label, typeNames[typ].label),
			Section:     "Controller",
			Class:       class,
			Type:        typ,
			WiiOnly:     typ != CtrlrGCPad,
			Buttons:     &s.Buttons[class][typ],
		})
	}
	return maps
}
