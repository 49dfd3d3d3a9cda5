package prefdoc

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muurk/snesprefs/internal/settings"
)

// TestTextRoundTrip tests that text values come back byte for byte,
// including Latin-1 names and control characters
func TestTextRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "latin-1", value: "Pok\xe9mon.smc"},
		{name: "control", value: "a\x01b.smc"},
		{name: "whitespace", value: "tab\there\nline\r"},
		{name: "nul and delete", value: "x\x00y\x7f"},
		{name: "private use", value: "keep \uf7e9 as is"},
		{name: "truncated utf-8", value: "caf\xc3"},
		{name: "unicode", value: "Seiken Densetsu 3 (聖剣伝説3).sfc"},
		{name: "markup", value: `100% <&> "quoted" 'single'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := wiiDefaults()
			s.LastFileLoaded = tt.value

			data, err := Encode(s, settings.TargetWii, 0)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !utf8.Valid(data) {
				t.Error("document is not valid UTF-8")
			}

			got := wiiDefaults()
			mustDecode(t, data).Apply(got)
			if got.LastFileLoaded != tt.value {
				t.Errorf("LastFileLoaded = %q, want %q", got.LastFileLoaded, tt.value)
			}
		})
	}
}

func TestEscapeText(t *testing.T) {
	for _, clean := range []string{"", "snes9xfx/roms", "Ünïcode.sfc", "a&b<c>"} {
		if got := EscapeText(clean); got != clean {
			t.Errorf("EscapeText(%q) = %q, want unchanged", clean, got)
		}
	}

	if got := EscapeText("Pok\xe9mon"); got != "Pok\uf7e9mon" {
		t.Errorf("EscapeText(latin-1) = %q", got)
	}
	if got := UnescapeText("Pok\uf7e9mon"); got != "Pok\xe9mon" {
		t.Errorf("UnescapeText() = %q", got)
	}
	if got := UnescapeText("plain"); got != "plain" {
		t.Errorf("UnescapeText(plain) = %q", got)
	}
}

// TestApplyBoundsUnescapedText tests that text is cropped after the raw
// bytes are restored
func TestApplyBoundsUnescapedText(t *testing.T) {
	doc := `<file version="1.3.0"><setting name="LoadFolder" value="` +
		strings.Repeat("\uf7e9", 2000) + `"/></file>`

	s := settings.Default()
	mustDecode(t, []byte(doc)).Apply(s)
	if len(s.LoadFolder) != settings.MaxPathLen-1 {
		t.Errorf("len(LoadFolder) = %d, want %d", len(s.LoadFolder), settings.MaxPathLen-1)
	}
	if s.LoadFolder != strings.Repeat("\xe9", settings.MaxPathLen-1) {
		t.Error("LoadFolder does not hold the restored bytes")
	}
}
