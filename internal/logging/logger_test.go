package logging

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	defer SetLogger(nil)

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger enabled without a level")
	}

	t.Setenv(LogLevelEnvVar, "warn")
	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	core := GetLogger().Core()
	if !core.Enabled(zapcore.WarnLevel) || core.Enabled(zapcore.InfoLevel) {
		t.Error("SNESPREFS_LOG_LEVEL=warn not applied")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)

	LogProbeAttempt(l, "sd:/apps/snes9xfx/settings.xml", "sd", errors.New("sd not available"))
	LogProbeAttempt(l, "sd:/snes9xfx/settings.xml", "sd", nil)
	LogCorrection(l, "videomode", "9", "0")
	LogMigration(l, "rename", "sd:/snes9x", "sd:/snes9xfx")
	LogDocument(l, "Read preferences document", "sd:/snes9xfx/settings.xml", []byte("<file>\n</file>"))

	entries := logs.All()
	if len(entries) != 5 {
		t.Fatalf("logged %d entries, want 5", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[1].Level != zapcore.InfoLevel {
		t.Error("rejected candidates log at debug, the accepted one at info")
	}
	if got := entries[2].ContextMap()["field"]; got != "videomode" {
		t.Errorf("correction field = %v", got)
	}
	if got := entries[4].ContextMap()["head"]; got != "<file>.</file>" {
		t.Errorf("document head = %q", got)
	}
}

func TestLogDocumentSkippedAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	LogDocument(zap.New(core), "Writing preferences document", "sd:/x", []byte(strings.Repeat("x", 1000)))
	if logs.Len() != 0 {
		t.Error("document logged above debug level")
	}
}

func TestHead(t *testing.T) {
	if got := head(nil); got != "" {
		t.Errorf("head(nil) = %q", got)
	}
	if got := head([]byte(strings.Repeat("a", 300))); len(got) != 256 {
		t.Errorf("head() kept %d bytes, want 256", len(got))
	}
}
