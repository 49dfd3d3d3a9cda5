package settings

import "unicode/utf8"

// Application identity used in folder names and in the preferences document.
const (
	AppName   = "Snes9x FX"
	AppFolder = "snes9xfx"
	// LegacyAppFolder is the folder name used by releases before the rename.
	LegacyAppFolder = "snes9x"
)

// MaxPathLen is the capacity of every text field, including the terminator
// the console firmware expects. Text is therefore limited to MaxPathLen-1 bytes.
const MaxPathLen = 1024

// Target identifies the console hardware the preferences are written for.
type Target int

const (
	TargetGameCube Target = iota
	TargetWii
)

// String returns the lower-case target name used in configuration files.
func (t Target) String() string {
	switch t {
	case TargetGameCube:
		return "gamecube"
	case TargetWii:
		return "wii"
	default:
		return "unknown"
	}
}

// ParseTarget converts a target name back into a Target.
func ParseTarget(s string) (Target, bool) {
	switch s {
	case "gamecube", "gc", "ngc":
		return TargetGameCube, true
	case "wii", "rvl":
		return TargetWii, true
	}
	return TargetGameCube, false
}

// Storage device identifiers. These are persisted as LoadMethod/SaveMethod.
const (
	DeviceAuto = iota
	DeviceSD
	DeviceUSB
	DeviceDVD
	DeviceSDSlotA
	DeviceSDSlotB
	DeviceSDPort2
)

// Languages, in the order of the menu language table.
const (
	LangJapanese = iota
	LangEnglish
	LangGerman
	LangFrench
	LangSpanish
	LangItalian
	LangDutch
	LangSimpChinese
	LangTradChinese
	LangKorean
	LangPortuguese
	LangBrazilianPortuguese
	LangCatalan
	LangTurkish
	LangLength
)

// Emulated input device classes. The first CtrlClassCount values own a
// button map; CtrlPad2 and CtrlPad4 are only valid as the Controller setting.
const (
	CtrlPad = iota
	CtrlScope
	CtrlMouse
	CtrlJust
	CtrlPad2
	CtrlPad4

	CtrlClassCount = CtrlJust + 1
)

// Physical controller types that can drive an emulated device.
const (
	CtrlrGCPad = iota
	CtrlrWiimote
	CtrlrClassic
	CtrlrWUPC
	CtrlrWiiDRC
	CtrlrNunchuk

	ControllerTypeCount
)

// MaxJP is the number of logical button slots in every mapping.
const MaxJP = 12

// Video filters.
const (
	FilterNone = iota
	FilterHQ2X
	FilterHQ2XSoft
	FilterHQ2XBold
	FilterScale2X
	FilterTVMode
)

// ButtonMap holds one fixed-length assignment array for every
// (device class, controller type) pair.
type ButtonMap [CtrlClassCount][ControllerTypeCount][MaxJP]uint32

// Settings is the complete set of user preferences persisted by the
// front-end. Fields are grouped the same way the preferences document is.
type Settings struct {
	// File
	AutoLoad          int
	AutoSave          int
	LoadMethod        int
	SaveMethod        int
	LoadFolder        string
	LastFileLoaded    string
	SaveFolder        string
	CheatFolder       string
	ScreenshotsFolder string
	CoverFolder       string
	ArtworkFolder     string

	// Video
	VideoMode     int
	ZoomHor       float32
	ZoomVert      float32
	Render        int
	Bilinear      int
	Aspect        int
	VideoFilter   int
	HiResMode     int
	FrameSkip     int
	ShowFrameRate int
	Crosshair     int
	XShift        int
	YShift        int

	// Audio
	MuteSound     int
	Interpolation int

	// Emulation Hacks
	SFXOverclock  int
	CPUOverclock  int
	NoSpriteLimit int

	// Emulation
	Satellaview int

	// Menu
	WiimoteOrientation int
	ExitAction         int
	MusicVolume        int
	SFXVolume          int
	Language           int
	PreviewImage       int
	HideSRAMSaving     int

	// Controller
	Controller        int
	FastForward       int
	FastForwardButton int

	Buttons ButtonMap
}

// System carries the console system configuration consulted when building
// defaults. On GameCube it is ignored.
type System struct {
	Widescreen bool
	Language   int
}

// Bound crops s so that it fits a text field of MaxPathLen bytes. A
// multi-byte character is never split.
func Bound(s string) string {
	return BoundTo(s, MaxPathLen)
}

// BoundTo crops s to capacity-1 bytes.
func BoundTo(s string, capacity int) string {
	max := capacity - 1
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Clone returns an independent copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}
