package settings

import (
	"math"
	"strings"
	"testing"

	"github.com/muurk/snesprefs/internal/prefserr"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Settings)
		check     func(*Settings) bool
		wantField string
	}{
		{"zoomHor too large", func(s *Settings) { s.ZoomHor = 5.0 }, func(s *Settings) bool { return s.ZoomHor == 1.0 }, "zoomHor"},
		{"zoomVert at lower bound", func(s *Settings) { s.ZoomVert = 0.5 }, func(s *Settings) bool { return s.ZoomVert == 1.0 }, "zoomVert"},
		{"zoomHor NaN", func(s *Settings) { s.ZoomHor = float32(math.NaN()) }, func(s *Settings) bool { return s.ZoomHor == 1.0 }, "zoomHor"},
		{"MusicVolume 150", func(s *Settings) { s.MusicVolume = 150 }, func(s *Settings) bool { return s.MusicVolume == 80 }, "MusicVolume"},
		{"SFXVolume negative", func(s *Settings) { s.SFXVolume = -1 }, func(s *Settings) bool { return s.SFXVolume == 20 }, "SFXVolume"},
		{"language -1", func(s *Settings) { s.Language = -1 }, func(s *Settings) bool { return s.Language == LangEnglish }, "language"},
		{"language past table", func(s *Settings) { s.Language = LangLength }, func(s *Settings) bool { return s.Language == LangEnglish }, "language"},
		{"xshift 50", func(s *Settings) { s.XShift = 50 }, func(s *Settings) bool { return s.XShift == 0 }, "xshift"},
		{"yshift -50", func(s *Settings) { s.YShift = -50 }, func(s *Settings) bool { return s.YShift == 0 }, "yshift"},
		{"Controller pad", func(s *Settings) { s.Controller = CtrlPad }, func(s *Settings) bool { return s.Controller == CtrlPad2 }, "Controller"},
		{"Controller past pad4", func(s *Settings) { s.Controller = CtrlPad4 + 1 }, func(s *Settings) bool { return s.Controller == CtrlPad2 }, "Controller"},
		{"videomode 6", func(s *Settings) { s.VideoMode = 6 }, func(s *Settings) bool { return s.VideoMode == 0 }, "videomode"},
		{"render 2", func(s *Settings) { s.Render = 2 }, func(s *Settings) bool { return s.Render == 0 }, "render"},
		{"LoadMethod 7", func(s *Settings) { s.LoadMethod = 7 }, func(s *Settings) bool { return s.LoadMethod == DeviceAuto }, "LoadMethod"},
		{"SaveMethod -1", func(s *Settings) { s.SaveMethod = -1 }, func(s *Settings) bool { return s.SaveMethod == DeviceAuto }, "SaveMethod"},
		{"SaveFolder too long", func(s *Settings) { s.SaveFolder = strings.Repeat("s", 3000) }, func(s *Settings) bool { return len(s.SaveFolder) == MaxPathLen-1 }, "SaveFolder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			cs := Sanitize(s)

			if len(cs) != 1 {
				t.Fatalf("Sanitize() made %d corrections, want 1: %v", len(cs), cs)
			}
			if cs[0].Field != tt.wantField {
				t.Errorf("corrected %q, want %q", cs[0].Field, tt.wantField)
			}
			if !tt.check(s) {
				t.Errorf("value not reset to default")
			}
		})
	}
}

func TestSanitizeKeepsValidValues(t *testing.T) {
	s := Default()
	s.ZoomHor = 1.49
	s.ZoomVert = 0.51
	s.MusicVolume = 0
	s.SFXVolume = 100
	s.XShift = 49
	s.YShift = -49
	s.Controller = CtrlPad4
	s.VideoMode = 5
	s.Render = 1
	s.LoadMethod = DeviceSDPort2
	s.Language = LangTurkish
	want := *s

	if cs := Sanitize(s); len(cs) != 0 {
		t.Errorf("Sanitize() corrected in-range values: %v", cs)
	}
	if *s != want {
		t.Error("Sanitize() changed in-range values")
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	s := Default()
	s.ZoomHor = 5
	s.MusicVolume = 150
	s.Language = -1
	s.VideoMode = 99

	if cs := Sanitize(s); len(cs) != 4 {
		t.Errorf("first Sanitize() made %d corrections, want 4", len(cs))
	}
	if cs := Sanitize(s); len(cs) != 0 {
		t.Errorf("second Sanitize() made corrections: %v", cs)
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	s.MusicVolume = 150
	s.Render = 9

	errs := Validate(s)
	if len(errs) != 2 {
		t.Fatalf("Validate() = %d errors, want 2", len(errs))
	}
	for _, err := range errs {
		if !prefserr.IsValidationError(err) {
			t.Errorf("Expected ValidationError, got %T", err)
		}
	}
	if s.MusicVolume != 150 || s.Render != 9 {
		t.Error("Validate() modified its argument")
	}
}

func TestCorrectionString(t *testing.T) {
	c := Correction{Field: "MusicVolume", Old: "150", New: "80"}
	if got := c.String(); got != "MusicVolume: 150 -> 80" {
		t.Errorf("String() = %q", got)
	}
}
