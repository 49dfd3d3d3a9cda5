package prefdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
)

func wiiDefaults() *settings.Settings {
	return settings.DefaultSettings(settings.TargetWii, settings.System{Language: settings.LangEnglish})
}

// mustDecode parses and validates data, failing the test on error
func mustDecode(t *testing.T, data []byte) *Document {
	t.Helper()
	d, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return d
}

// TestEncodeRoundTrip tests that every value survives encode then decode
func TestEncodeRoundTrip(t *testing.T) {
	s := wiiDefaults()
	s.VideoMode = 3
	s.ZoomHor = 1.25
	s.ZoomVert = 0.75
	s.XShift = -12
	s.LoadFolder = "snes9xfx/roms/rpg"
	s.LastFileLoaded = "Chrono Trigger (USA).sfc"
	s.WiimoteOrientation = 1
	s.Buttons[settings.CtrlPad][settings.CtrlrClassic][3] = 0x80000000
	s.Buttons[settings.CtrlJust][settings.CtrlrWiimote][0] = 0

	data, err := Encode(s, settings.TargetWii, 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got := &settings.Settings{}
	mustDecode(t, data).Apply(got)

	if *got != *s {
		t.Errorf("round trip mismatch:\n%s", settings.FormatDiff(s, got))
	}
}

// TestEncodeIdempotent tests that re-encoding a decoded document gives identical bytes
func TestEncodeIdempotent(t *testing.T) {
	for _, target := range []settings.Target{settings.TargetGameCube, settings.TargetWii} {
		t.Run(target.String(), func(t *testing.T) {
			s := settings.DefaultSettings(target, settings.System{Language: settings.LangGerman})
			first, err := Encode(s, target, 0)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded := settings.DefaultSettings(target, settings.System{})
			mustDecode(t, first).Apply(decoded)

			second, err := Encode(decoded, target, 0)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("second encode differs from first:\n%s\n---\n%s", first, second)
			}
		})
	}
}

// TestEncodeLayout tests the declaration, root attributes and leaf attribute order
func TestEncodeLayout(t *testing.T) {
	data, err := Encode(settings.Default(), settings.TargetGameCube, 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)

	wants := []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<file app="Snes9x FX" version="1.3.0">`,
		"\t<section name=\"File\" description=\"File Settings\">",
		"\t\t<setting name=\"videomode\" value=\"0\" description=\"Video Mode\"/>",
		`<setting name="zoomHor" value="1.00" description="Horizontal Zoom Level"/>`,
		`<controller name="btnmap_pad_gcpad" description="SNES Pad - GameCube Controller">`,
		`<button number="11" assignment="`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("encoded document missing %q", want)
		}
	}
	if !strings.HasPrefix(out, wants[0]) {
		t.Errorf("document does not start with the XML declaration")
	}

	// sections appear in fixed order
	last := -1
	for _, sec := range settings.Sections {
		i := strings.Index(out, `<section name="`+sec.Name+`"`)
		if i < 0 {
			t.Fatalf("section %q missing", sec.Name)
		}
		if i < last {
			t.Errorf("section %q out of order", sec.Name)
		}
		last = i
	}
}

// TestEncodeTargetLeaves tests which leaves exist for each target
func TestEncodeTargetLeaves(t *testing.T) {
	wiiOnly := []string{
		`name="WiimoteOrientation"`,
		`name="btnmap_pad_wiimote"`,
		`name="btnmap_pad_classic"`,
		`name="btnmap_pad_wupc"`,
		`name="btnmap_pad_wiidrc"`,
		`name="btnmap_pad_nunchuk"`,
		`name="btnmap_scope_wiimote"`,
		`name="btnmap_mouse_wiimote"`,
		`name="btnmap_just_wiimote"`,
	}
	common := []string{
		`name="btnmap_pad_gcpad"`,
		`name="btnmap_scope_gcpad"`,
		`name="btnmap_mouse_gcpad"`,
		`name="btnmap_just_gcpad"`,
	}

	gc, err := Encode(settings.Default(), settings.TargetGameCube, 0)
	if err != nil {
		t.Fatalf("Encode(gamecube) error = %v", err)
	}
	wii, err := Encode(wiiDefaults(), settings.TargetWii, 0)
	if err != nil {
		t.Fatalf("Encode(wii) error = %v", err)
	}

	for _, leaf := range wiiOnly {
		if bytes.Contains(gc, []byte(leaf)) {
			t.Errorf("GameCube document contains %s", leaf)
		}
		if !bytes.Contains(wii, []byte(leaf)) {
			t.Errorf("Wii document missing %s", leaf)
		}
	}
	for _, leaf := range common {
		if !bytes.Contains(gc, []byte(leaf)) {
			t.Errorf("GameCube document missing %s", leaf)
		}
		if !bytes.Contains(wii, []byte(leaf)) {
			t.Errorf("Wii document missing %s", leaf)
		}
	}

	if n := bytes.Count(wii, []byte("<controller ")); n != 12 {
		t.Errorf("Wii document has %d controller leaves, want 12", n)
	}
	if n := bytes.Count(gc, []byte("<controller ")); n != 4 {
		t.Errorf("GameCube document has %d controller leaves, want 4", n)
	}
}

// TestEncodeCapacity tests that an oversized document is refused
func TestEncodeCapacity(t *testing.T) {
	_, err := Encode(wiiDefaults(), settings.TargetWii, 100)
	if err == nil {
		t.Fatal("Encode() with a 100 byte buffer succeeded")
	}
	if !prefserr.IsCapacityError(err) {
		t.Errorf("Encode() error = %v, want capacity error", err)
	}

	data, err := Encode(wiiDefaults(), settings.TargetWii, 0)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, err := Encode(wiiDefaults(), settings.TargetWii, len(data)); err != nil {
		t.Errorf("Encode() with an exact-size buffer error = %v", err)
	}
}

// TestParseMalformed tests that bytes which are not a document are rejected
func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Empty", ""},
		{"Plain text", "not a document"},
		{"Unclosed root", `<file version="1.3.0"><section name="Video">`},
		{"Bad tag", `<file version="1.3.0"><<setting/></file>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.data)
			}
			if d != nil {
				t.Errorf("Parse(%q) returned a document alongside an error", tt.data)
			}
			if !prefserr.IsFormatError(err) {
				t.Errorf("Parse(%q) error = %v, want format error", tt.data, err)
			}
		})
	}
}

// TestApplySparse tests that a document overlays only the values it holds
func TestApplySparse(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<file app="Snes9x FX" version="1.3.0">
	<section name="Video">
		<setting name="videomode" value="3"/>
		<setting name="zoomHor"/>
	</section>
</file>`

	s := wiiDefaults()
	want := s.Clone()
	want.VideoMode = 3

	n := mustDecode(t, []byte(doc)).Apply(s)
	if n != 1 {
		t.Errorf("Apply() = %d, want 1", n)
	}
	if *s != *want {
		t.Errorf("Apply() changed more than videomode:\n%s", settings.FormatDiff(want, s))
	}
}

// TestApplyFirstMatch tests that a duplicated leaf resolves to its first occurrence
func TestApplyFirstMatch(t *testing.T) {
	doc := `<file version="1.3.0">
	<section name="Menu">
		<setting name="MusicVolume" value="10"/>
	</section>
	<section name="Audio">
		<setting name="MusicVolume" value="90"/>
	</section>
</file>`

	s := settings.Default()
	mustDecode(t, []byte(doc)).Apply(s)
	if s.MusicVolume != 10 {
		t.Errorf("MusicVolume = %d, want 10", s.MusicVolume)
	}
}

// TestApplyButtons tests button lookup by slot number
func TestApplyButtons(t *testing.T) {
	doc := `<file version="1.3.0">
	<section name="Controller">
		<controller name="btnmap_pad_gcpad">
			<button number="2" assignment="-2147483648"/>
			<button number="5" assignment="4294967295"/>
			<button number="7"/>
			<button number="99" assignment="1"/>
		</controller>
	</section>
</file>`

	s := settings.Default()
	before := s.Buttons
	n := mustDecode(t, []byte(doc)).Apply(s)

	if n != 2 {
		t.Errorf("Apply() = %d, want 2", n)
	}
	pad := s.Buttons[settings.CtrlPad][settings.CtrlrGCPad]
	if pad[2] != 0x80000000 {
		t.Errorf("slot 2 = %#x, want 0x80000000", pad[2])
	}
	if pad[5] != 0xFFFFFFFF {
		t.Errorf("slot 5 = %#x, want 0xffffffff", pad[5])
	}
	if pad[7] != before[settings.CtrlPad][settings.CtrlrGCPad][7] {
		t.Errorf("slot 7 changed without an assignment attribute")
	}
}

// TestApplyGameCubeReadsWiiValues tests that Wii-only values are still picked up
func TestApplyGameCubeReadsWiiValues(t *testing.T) {
	doc := `<file version="1.3.0">
	<setting name="WiimoteOrientation" value="1"/>
</file>`

	s := settings.Default()
	mustDecode(t, []byte(doc)).Apply(s)
	if s.WiimoteOrientation != 1 {
		t.Errorf("WiimoteOrientation = %d, want 1", s.WiimoteOrientation)
	}
}

// TestApplyTruncatesText tests that oversized text is cropped to capacity
func TestApplyTruncatesText(t *testing.T) {
	long := strings.Repeat("a", 2000)
	doc := `<file version="1.3.0"><setting name="LoadFolder" value="` + long + `"/></file>`

	s := settings.Default()
	mustDecode(t, []byte(doc)).Apply(s)
	if len(s.LoadFolder) != settings.MaxPathLen-1 {
		t.Errorf("len(LoadFolder) = %d, want %d", len(s.LoadFolder), settings.MaxPathLen-1)
	}
	if s.LoadFolder != long[:settings.MaxPathLen-1] {
		t.Error("LoadFolder is not a prefix of the stored value")
	}
}

// TestDocumentAccessors tests Version, App and Setting
func TestDocumentAccessors(t *testing.T) {
	doc := `<file app="Snes9x FX" version="1.2.0"><setting name="render" value="1"/></file>`
	d, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, ok := d.Version(); !ok || v != "1.2.0" {
		t.Errorf("Version() = %q, %v", v, ok)
	}
	if app := d.App(); app != "Snes9x FX" {
		t.Errorf("App() = %q", app)
	}
	if v, ok := d.Setting("render"); !ok || v != "1" {
		t.Errorf("Setting(render) = %q, %v", v, ok)
	}
	if _, ok := d.Setting("videomode"); ok {
		t.Error("Setting(videomode) found in a document without it")
	}
}
