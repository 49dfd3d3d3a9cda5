package settings

// GameCube pad button bits.
const (
	PadButtonLeft  = 0x0001
	PadButtonRight = 0x0002
	PadButtonDown  = 0x0004
	PadButtonUp    = 0x0008
	PadTriggerZ    = 0x0010
	PadTriggerR    = 0x0020
	PadTriggerL    = 0x0040
	PadButtonA     = 0x0100
	PadButtonB     = 0x0200
	PadButtonX     = 0x0400
	PadButtonY     = 0x0800
	PadButtonStart = 0x1000
)

// Wiimote button bits.
const (
	WPadButton2     = 0x0001
	WPadButton1     = 0x0002
	WPadButtonB     = 0x0004
	WPadButtonA     = 0x0008
	WPadButtonMinus = 0x0010
	WPadButtonHome  = 0x0080
	WPadButtonLeft  = 0x0100
	WPadButtonRight = 0x0200
	WPadButtonDown  = 0x0400
	WPadButtonUp    = 0x0800
	WPadButtonPlus  = 0x1000
)

// Nunchuk and Classic Controller button bits, shifted into the upper half
// of the expansion word.
const (
	WPadNunchukButtonZ = 0x0001 << 16
	WPadNunchukButtonC = 0x0002 << 16

	WPadClassicButtonUp    = 0x0001 << 16
	WPadClassicButtonLeft  = 0x0002 << 16
	WPadClassicButtonZR    = 0x0004 << 16
	WPadClassicButtonX     = 0x0008 << 16
	WPadClassicButtonA     = 0x0010 << 16
	WPadClassicButtonY     = 0x0020 << 16
	WPadClassicButtonB     = 0x0040 << 16
	WPadClassicButtonZL    = 0x0080 << 16
	WPadClassicButtonFullR = 0x0200 << 16
	WPadClassicButtonPlus  = 0x0400 << 16
	WPadClassicButtonHome  = 0x0800 << 16
	WPadClassicButtonMinus = 0x1000 << 16
	WPadClassicButtonFullL = 0x2000 << 16
	WPadClassicButtonDown  = 0x4000 << 16
	WPadClassicButtonRight = 0x8000 << 16
)

// Wii U gamepad (DRC) button bits.
const (
	DRCButtonSync  = 0x0001
	DRCButtonHome  = 0x0002
	DRCButtonMinus = 0x0004
	DRCButtonPlus  = 0x0008
	DRCButtonR     = 0x0010
	DRCButtonL     = 0x0020
	DRCButtonZR    = 0x0040
	DRCButtonZL    = 0x0080
	DRCButtonDown  = 0x0100
	DRCButtonUp    = 0x0200
	DRCButtonRight = 0x0400
	DRCButtonLeft  = 0x0800
	DRCButtonY     = 0x1000
	DRCButtonX     = 0x2000
	DRCButtonB     = 0x4000
	DRCButtonA     = 0x8000
)

// SNES pad slot order: A B X Y L R Select Start Up Down Left Right.
var defaultPad = [ControllerTypeCount][MaxJP]uint32{
	CtrlrGCPad: {
		PadButtonA, PadButtonB, PadButtonX, PadButtonY, PadTriggerL, PadTriggerR,
		PadTriggerZ, PadButtonStart, PadButtonUp, PadButtonDown, PadButtonLeft, PadButtonRight,
	},
	CtrlrWiimote: {
		WPadButton2, WPadButton1, WPadButtonB, WPadButtonA, 0, 0,
		WPadButtonMinus, WPadButtonPlus, WPadButtonRight, WPadButtonLeft, WPadButtonUp, WPadButtonDown,
	},
	CtrlrClassic: {
		WPadClassicButtonA, WPadClassicButtonB, WPadClassicButtonX, WPadClassicButtonY,
		WPadClassicButtonFullL, WPadClassicButtonFullR, WPadClassicButtonMinus, WPadClassicButtonPlus,
		WPadClassicButtonUp, WPadClassicButtonDown, WPadClassicButtonLeft, WPadClassicButtonRight,
	},
	CtrlrWUPC: {
		WPadClassicButtonA, WPadClassicButtonB, WPadClassicButtonX, WPadClassicButtonY,
		WPadClassicButtonFullL, WPadClassicButtonFullR, WPadClassicButtonMinus, WPadClassicButtonPlus,
		WPadClassicButtonUp, WPadClassicButtonDown, WPadClassicButtonLeft, WPadClassicButtonRight,
	},
	CtrlrWiiDRC: {
		DRCButtonA, DRCButtonB, DRCButtonX, DRCButtonY, DRCButtonL, DRCButtonR,
		DRCButtonMinus, DRCButtonPlus, DRCButtonUp, DRCButtonDown, DRCButtonLeft, DRCButtonRight,
	},
	CtrlrNunchuk: {
		WPadButtonA, WPadButtonB, WPadNunchukButtonC, WPadNunchukButtonZ, WPadButton2, WPadButton1,
		WPadButtonMinus, WPadButtonPlus, WPadButtonUp, WPadButtonDown, WPadButtonLeft, WPadButtonRight,
	},
}

// Superscope slots: Fire Aim(offscreen) Cursor Turbo Pause.
var defaultScope = [ControllerTypeCount][MaxJP]uint32{
	CtrlrGCPad:   {PadButtonA, PadButtonB, PadTriggerZ, PadButtonY, PadButtonX, PadButtonStart},
	CtrlrWiimote: {WPadButtonB, WPadButtonA, WPadButtonMinus, WPadButtonUp, WPadButtonDown, WPadButtonPlus},
}

// Mouse slots: Left Right.
var defaultMouse = [ControllerTypeCount][MaxJP]uint32{
	CtrlrGCPad:   {PadButtonA, PadButtonB},
	CtrlrWiimote: {WPadButtonA, WPadButtonB},
}

// Justifier slots: Fire Aim(offscreen) Start.
var defaultJust = [ControllerTypeCount][MaxJP]uint32{
	CtrlrGCPad:   {PadButtonB, PadButtonA, PadButtonStart},
	CtrlrWiimote: {WPadButtonB, WPadButtonA, WPadButtonPlus},
}

// DefaultButtonMap returns the factory button assignments.
func DefaultButtonMap() ButtonMap {
	var m ButtonMap
	m[CtrlPad] = defaultPad
	m[CtrlScope] = defaultScope
	m[CtrlMouse] = defaultMouse
	m[CtrlJust] = defaultJust
	return m
}

// ResetControls restores the factory button assignments.
func (s *Settings) ResetControls() {
	s.Buttons = DefaultButtonMap()
}

// DefaultSettings returns the factory preferences for a target. On Wii the
// aspect ratio and menu language follow the console system configuration.
func DefaultSettings(target Target, sys System) *Settings {
	s := &Settings{
		AutoLoad:          1,
		AutoSave:          1,
		LoadMethod:        DeviceAuto,
		SaveMethod:        DeviceAuto,
		LoadFolder:        AppFolder + "/roms",
		SaveFolder:        AppFolder + "/saves",
		CheatFolder:       AppFolder + "/cheats",
		ScreenshotsFolder: AppFolder + "/screenshots",
		CoverFolder:       AppFolder + "/covers",
		ArtworkFolder:     AppFolder + "/artwork",

		VideoMode:     0, // automatic
		ZoomHor:       1.0,
		ZoomVert:      1.0,
		Render:        0,
		VideoFilter:   FilterNone,
		HiResMode:     1,
		FrameSkip:     1,
		ShowFrameRate: 0,
		Crosshair:     1,

		Satellaview: 1,

		MusicVolume: 80,
		SFXVolume:   20,
		Language:    LangEnglish,

		Controller:        CtrlPad2,
		FastForward:       1,
		FastForwardButton: 0, // right analog stick
	}

	if target == TargetWii {
		if sys.Widescreen {
			s.Aspect = 1
		}
		s.Language = sys.Language
		switch {
		case s.Language == LangTradChinese:
			s.Language = LangSimpChinese
		case s.Language < 0 || s.Language >= LangLength:
			s.Language = LangEnglish
		}
	}

	s.ResetControls()
	return s
}

// Default returns the GameCube factory preferences, which do not depend on
// any system configuration.
func Default() *Settings {
	return DefaultSettings(TargetGameCube, System{})
}
