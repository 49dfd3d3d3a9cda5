package settings

import (
	"fmt"
	"strings"
)

var deviceNames = map[int]string{
	DeviceAuto:    "Auto",
	DeviceSD:      "SD",
	DeviceUSB:     "USB",
	DeviceDVD:     "DVD",
	DeviceSDSlotA: "SD Gecko Slot A",
	DeviceSDSlotB: "SD Gecko Slot B",
	DeviceSDPort2: "SD2SP2",
}

// DeviceName returns the menu label of a storage device id.
func DeviceName(dev int) string {
	if n, ok := deviceNames[dev]; ok {
		return n
	}
	return fmt.Sprintf("Device(%d)", dev)
}

var languageNames = [LangLength]string{
	"Japanese", "English", "German", "French", "Spanish", "Italian", "Dutch",
	"Simplified Chinese", "Traditional Chinese", "Korean", "Portuguese",
	"Brazilian Portuguese", "Catalan", "Turkish",
}

// LanguageName returns the menu label of a language id.
func LanguageName(lang int) string {
	if lang >= 0 && lang < LangLength {
		return languageNames[lang]
	}
	return fmt.Sprintf("Language(%d)", lang)
}

// Summary returns a one-line summary of the settings
func (s *Settings) Summary() string {
	return fmt.Sprintf("%s: load %s, save %s, video mode %d, %s",
		AppName, DeviceName(s.LoadMethod), DeviceName(s.SaveMethod), s.VideoMode, LanguageName(s.Language))
}

// FormatCompact returns one "name = value" line per field present on target
func (s *Settings) FormatCompact(target Target) string {
	var b strings.Builder
	for _, f := range s.Fields() {
		if !f.Present(target) {
			continue
		}
		b.WriteString(fmt.Sprintf("%s = %s\n", f.Name, f.Value()))
	}
	return b.String()
}

// FormatSection returns the fields of one section, aligned, with descriptions
func (s *Settings) FormatSection(section string, target Target) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== %s ===\n", section))
	for _, f := range s.Fields() {
		if f.Section != section || !f.Present(target) {
			continue
		}
		v := f.Value()
		if f.Kind == KindText && v == "" {
			v = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%-24s %-22s %s\n", f.Description+":", v, f.Name))
	}
	return b.String()
}

// FormatButtons returns the assignment table of every mapping present on target
func (s *Settings) FormatButtons(target Target) string {
	var b strings.Builder
	b.WriteString("=== Button Mappings ===\n")
	for _, c := range s.ControllerMaps() {
		if !c.Present(target) {
			continue
		}
		parts := make([]string, 0, MaxJP)
		for _, v := range c.Buttons {
			parts = append(parts, fmt.Sprintf("%#x", v))
		}
		b.WriteString(fmt.Sprintf("%-40s %s\n", c.Description+":", strings.Join(parts, " ")))
	}
	return b.String()
}

// FormatDetailed returns every section and the button mappings
func (s *Settings) FormatDetailed(target Target) string {
	var b strings.Builder
	for _, sec := range Sections {
		b.WriteString(s.FormatSection(sec.Name, target))
		b.WriteString("\n")
	}
	b.WriteString(s.FormatButtons(target))
	return b.String()
}

// FormatDiff returns the scalar fields that differ between old and new
func FormatDiff(old, new *Settings) string {
	var b strings.Builder
	b.WriteString("=== Preference Differences ===\n")

	of, nf := old.Fields(), new.Fields()
	changes := 0
	for i := range of {
		if of[i].Value() != nf[i].Value() {
			b.WriteString(fmt.Sprintf("  %s: %s → %s\n", of[i].Name, of[i].Value(), nf[i].Value()))
			changes++
		}
	}
	if old.Buttons != new.Buttons {
		b.WriteString("  button mappings changed\n")
		changes++
	}

	if changes == 0 {
		b.WriteString("\n(no differences detected)\n")
	}
	return b.String()
}
