package settings

import (
	"fmt"
	"strconv"

	"github.com/muurk/snesprefs/internal/prefserr"
)

// Correction records one value replaced by Sanitize.
type Correction struct {
	Field string
	Old   string
	New   string
}

// String returns a one-line description of the correction.
func (c Correction) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Field, c.Old, c.New)
}

type corrections []Correction

func (cs *corrections) intIn(name string, p *int, valid func(int) bool, def int) {
	if valid(*p) {
		return
	}
	*cs = append(*cs, Correction{Field: name, Old: strconv.Itoa(*p), New: strconv.Itoa(def)})
	*p = def
}

// open interval, so NaN is always replaced.
func (cs *corrections) floatBetween(name string, p *float32, lo, hi, def float32) {
	if *p > lo && *p < hi {
		return
	}
	*cs = append(*cs, Correction{
		Field: name,
		Old:   strconv.FormatFloat(float64(*p), 'f', 2, 32),
		New:   strconv.FormatFloat(float64(def), 'f', 2, 32),
	})
	*p = def
}

func (cs *corrections) text(name string, p *string) {
	b := Bound(*p)
	if b == *p {
		return
	}
	*cs = append(*cs, Correction{
		Field: name,
		Old:   fmt.Sprintf("%d bytes", len(*p)),
		New:   fmt.Sprintf("%d bytes", len(b)),
	})
	*p = b
}

func within(lo, hi int) func(int) bool {
	return func(v int) bool { return v >= lo && v <= hi }
}

// Sanitize replaces every out-of-range value with the factory default for
// that field and returns the corrections it made. Rules are independent of
// each other. Values that would crash the emulator or the menu are the ones
// covered; purely cosmetic toggles are left alone.
func Sanitize(s *Settings) []Correction {
	var cs corrections

	cs.intIn("LoadMethod", &s.LoadMethod, within(DeviceAuto, DeviceSDPort2), DeviceAuto)
	cs.intIn("SaveMethod", &s.SaveMethod, within(DeviceAuto, DeviceSDPort2), DeviceAuto)

	cs.floatBetween("zoomHor", &s.ZoomHor, 0.5, 1.5, 1.0)
	cs.floatBetween("zoomVert", &s.ZoomVert, 0.5, 1.5, 1.0)
	cs.intIn("xshift", &s.XShift, within(-49, 49), 0)
	cs.intIn("yshift", &s.YShift, within(-49, 49), 0)

	cs.intIn("MusicVolume", &s.MusicVolume, within(0, 100), 80)
	cs.intIn("SFXVolume", &s.SFXVolume, within(0, 100), 20)
	cs.intIn("language", &s.Language, within(0, LangLength-1), LangEnglish)
	cs.intIn("Controller", &s.Controller, within(CtrlScope, CtrlPad4), CtrlPad2)
	cs.intIn("videomode", &s.VideoMode, within(0, 5), 0)
	cs.intIn("render", &s.Render, within(0, 1), 0)

	cs.text("LoadFolder", &s.LoadFolder)
	cs.text("LastFileLoaded", &s.LastFileLoaded)
	cs.text("SaveFolder", &s.SaveFolder)
	cs.text("CheatFolder", &s.CheatFolder)
	cs.text("ScreenshotsFolder", &s.ScreenshotsFolder)
	cs.text("CoverFolder", &s.CoverFolder)
	cs.text("ArtworkFolder", &s.ArtworkFolder)

	return cs
}

// Validate reports the values Sanitize would replace, without changing s.
// Returns a slice of validation errors (empty if valid).
func Validate(s *Settings) []error {
	var errors []error
	for _, c := range Sanitize(s.Clone()) {
		errors = append(errors, prefserr.NewValidationError(
			fmt.Sprintf("%s out of range: %s (default %s)", c.Field, c.Old, c.New),
		))
	}
	return errors
}
