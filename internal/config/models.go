package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muurk/snesprefs/internal/settings"
)

// Registry represents the entire user configuration file.
// It tells the tool which console layout to emulate and where each console
// device is mounted on this computer.
type Registry struct {
	Version int    `yaml:"version"`
	Target  string `yaml:"target"`             // "wii" or "gamecube"
	AppPath string `yaml:"app_path,omitempty"` // Launch folder, e.g. "sd:/apps/snes9xfx"

	// Mounts maps console device names ("sd", "usb", "carda", ...) to host
	// folders, e.g. sd: /media/user/SDCARD
	Mounts map[string]string `yaml:"mounts,omitempty"`

	System      *SystemPrefs `yaml:"system,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// SystemPrefs stands in for the console system configuration that Wii
// defaults are derived from.
type SystemPrefs struct {
	Widescreen bool   `yaml:"widescreen"`
	Language   string `yaml:"language"` // Language name, e.g. "english"
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	LogLevel       string `yaml:"log_level,omitempty"`        // debug, info, warn, error
	SaveBufferSize int    `yaml:"save_buffer_size,omitempty"` // Largest document written, in bytes
	Format         string `yaml:"format,omitempty"`           // Default output format of `show`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Target:  settings.TargetWii.String(),
		Mounts:  make(map[string]string),
		System: &SystemPrefs{
			Language: "english",
		},
		Preferences: &Preferences{
			Format: "detailed",
		},
	}
}

// TargetValue parses the configured target.
func (r *Registry) TargetValue() (settings.Target, error) {
	t, ok := settings.ParseTarget(strings.ToLower(r.Target))
	if !ok {
		return settings.TargetWii, fmt.Errorf("unknown target %q (expected wii or gamecube)", r.Target)
	}
	return t, nil
}

// SystemValue returns the configured system configuration. Unknown
// languages fall back to English.
func (r *Registry) SystemValue() settings.System {
	sys := settings.System{Language: settings.LangEnglish}
	if r.System == nil {
		return sys
	}
	sys.Widescreen = r.System.Widescreen
	if lang, ok := LanguageByName(r.System.Language); ok {
		sys.Language = lang
	}
	return sys
}

// SetMount maps a console device to a host folder. An empty dir removes the
// mapping.
func (r *Registry) SetMount(device, dir string) {
	if r.Mounts == nil {
		r.Mounts = make(map[string]string)
	}
	if dir == "" {
		delete(r.Mounts, device)
		return
	}
	r.Mounts[device] = dir
}

// MountNames returns the mapped device names, sorted.
func (r *Registry) MountNames() []string {
	names := make([]string, 0, len(r.Mounts))
	for n := range r.Mounts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LanguageByName maps a language name ("english", "Brazilian Portuguese",
// "brazilian_portuguese") to its id.
func LanguageByName(name string) (int, bool) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", " ")
	for id := 0; id < settings.LangLength; id++ {
		if strings.ToLower(settings.LanguageName(id)) == norm {
			return id, true
		}
	}
	return settings.LangEnglish, false
}
