package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/snesprefs/internal/settings"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "snesprefs"
	if !strings.Contains(configDir, "snesprefs") {
		t.Errorf("GetConfigDir() = %v, should contain 'snesprefs'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "snesprefs"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestSetConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	SetConfigPath(path)
	defer SetConfigPath("")

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if got != path {
		t.Errorf("GetConfigPath() = %v, want %v", got, path)
	}

	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	reg.SetMount("usb", "/media/usb")
	if err := SaveGlobal(); err != nil {
		t.Fatalf("SaveGlobal() error = %v", err)
	}

	reloaded, err := ReloadRegistry()
	if err != nil {
		t.Fatalf("ReloadRegistry() error = %v", err)
	}
	if reloaded.Mounts["usb"] != "/media/usb" {
		t.Errorf("Mounts[usb] = %q after reload", reloaded.Mounts["usb"])
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Mounts == nil {
		t.Error("NewRegistry().Mounts should not be nil")
	}

	if reg.Preferences == nil || reg.System == nil {
		t.Fatal("NewRegistry() sections should not be nil")
	}

	target, err := reg.TargetValue()
	if err != nil || target != settings.TargetWii {
		t.Errorf("NewRegistry().TargetValue() = %v, %v; want wii", target, err)
	}

	if sys := reg.SystemValue(); sys.Language != settings.LangEnglish || sys.Widescreen {
		t.Errorf("NewRegistry().SystemValue() = %+v", sys)
	}
}

func TestRegistrySetMount(t *testing.T) {
	reg := &Registry{Version: 1}

	reg.SetMount("sd", "/media/sd")
	reg.SetMount("carda", "/media/carda")
	if reg.Mounts["sd"] != "/media/sd" {
		t.Errorf("Mounts[sd] = %q", reg.Mounts["sd"])
	}

	names := reg.MountNames()
	if strings.Join(names, ",") != "carda,sd" {
		t.Errorf("MountNames() = %v", names)
	}

	reg.SetMount("sd", "")
	if _, ok := reg.Mounts["sd"]; ok {
		t.Error("SetMount with an empty dir should remove the mapping")
	}
}

func TestLanguageByName(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"english", settings.LangEnglish, true},
		{"German", settings.LangGerman, true},
		{"brazilian_portuguese", settings.LangBrazilianPortuguese, true},
		{" Simplified Chinese ", settings.LangSimpChinese, true},
		{"klingon", settings.LangEnglish, false},
	}

	for _, tt := range tests {
		got, ok := LanguageByName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LanguageByName(%q) = %d, %v; want %d, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	// Use a temporary directory for testing
	testConfigPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	// Create and populate registry
	reg := NewRegistry()
	reg.Target = "gamecube"
	reg.SetMount("carda", "/media/carda")
	reg.System.Widescreen = true
	reg.System.Language = "german"
	reg.Preferences.LogLevel = "debug"

	if err := reg.SaveTo(testConfigPath); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if _, err := os.Stat(testConfigPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary config file left behind")
	}

	data, err := os.ReadFile(testConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# snesprefs configuration file") {
		t.Error("saved config is missing its header comment")
	}

	// Load from test path
	loaded, err := LoadRegistryFrom(testConfigPath)
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}

	target, _ := loaded.TargetValue()
	if target != settings.TargetGameCube {
		t.Errorf("Loaded target = %v, want gamecube", target)
	}
	if loaded.Mounts["carda"] != "/media/carda" {
		t.Errorf("Loaded mount = %q", loaded.Mounts["carda"])
	}
	sys := loaded.SystemValue()
	if !sys.Widescreen || sys.Language != settings.LangGerman {
		t.Errorf("Loaded system = %+v", sys)
	}
	if loaded.Preferences.LogLevel != "debug" {
		t.Errorf("Loaded log level = %q", loaded.Preferences.LogLevel)
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	reg, err := LoadRegistryFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFrom() error = %v", err)
	}
	if reg.Version != 1 || reg.Mounts == nil {
		t.Error("missing file should give the default registry")
	}
}

func TestParseRegistry(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"Minimal", "version: 1\ntarget: wii\n", false},
		{"GameCube alias", "version: 1\ntarget: gc\n", false},
		{"Wrong version", "version: 2\ntarget: wii\n", true},
		{"Unknown target", "version: 1\ntarget: saturn\n", true},
		{"Not YAML", "version: [1\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := parseRegistry([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (reg.Mounts == nil || reg.System == nil || reg.Preferences == nil) {
				t.Error("parseRegistry() left sections nil")
			}
		})
	}
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkSystemValue(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.SystemValue()
	}
}
