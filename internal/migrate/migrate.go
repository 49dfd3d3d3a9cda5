// Package migrate moves preferences and card contents from the legacy
// "snes9x" naming to the current "snes9xfx" naming.
//
// Every step is best-effort and idempotent: a second run over migrated
// settings and folders changes nothing and returns an empty Report.
package migrate

import (
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/logging"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
)

// Report lists what a migration run changed.
type Report struct {
	// Renamed holds "old -> new" for a renamed application folder.
	Renamed []string
	// Rewritten holds the folder settings moved to the current name.
	Rewritten []settings.Correction
	// Created holds asset folders created on the load device.
	Created []string
}

// Empty reports whether the run changed nothing.
func (r Report) Empty() bool {
	return len(r.Renamed) == 0 && len(r.Rewritten) == 0 && len(r.Created) == 0
}

// Migrator applies the legacy-name migration.
type Migrator struct {
	platform storage.Platform
	profile  *storage.Profile
	logger   *zap.Logger
}

// New creates a migrator. A nil logger uses the package logger.
func New(platform storage.Platform, profile *storage.Profile, logger *zap.Logger) *Migrator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Migrator{platform: platform, profile: profile, logger: logger}
}

// Run migrates s in place and renames the legacy folder on the load device.
// Only SD and USB load devices are touched on disk; the path settings are
// rewritten regardless of device.
func (m *Migrator) Run(s *settings.Settings) Report {
	var r Report

	prefix := ""
	mounted := false
	if s.LoadMethod == settings.DeviceSD || s.LoadMethod == settings.DeviceUSB {
		prefix = m.profile.Prefix(s.LoadMethod)
		if prefix != "" {
			mounted = m.platform.MountDevice(s.LoadMethod, false)
		}
	}

	if mounted {
		m.renameFolder(prefix, &r)
	}

	r.Rewritten = RewriteFolders(s)
	for _, c := range r.Rewritten {
		logging.LogMigration(m.logger, "rewrite "+c.Field, c.Old, c.New)
	}

	if mounted {
		for _, folder := range []string{s.ScreenshotsFolder, s.CoverFolder, s.ArtworkFolder, s.CheatFolder} {
			if folder == "" {
				continue
			}
			r.Created = append(r.Created, m.ensureDir(prefix+folder)...)
		}
	}

	return r
}

func (m *Migrator) renameFolder(prefix string, r *Report) {
	from := prefix + settings.LegacyAppFolder
	to := prefix + settings.AppFolder
	if !m.platform.DirExists(from) {
		return
	}
	if err := m.platform.RenamePath(from, to); err != nil {
		m.logger.Warn("Legacy folder not renamed", zap.String("from", from), zap.Error(err))
		return
	}
	logging.LogMigration(m.logger, "rename", from, to)
	r.Renamed = append(r.Renamed, from+" -> "+to)
}

// ensureDir creates dir and any missing parents below the device root and
// returns the folders it created.
func (m *Migrator) ensureDir(dir string) []string {
	dir = strings.TrimSuffix(dir, "/")
	if m.platform.DirExists(dir) {
		return nil
	}

	var missing []string
	for d := dir; strings.Contains(d, "/") && !strings.HasSuffix(d, ":/"); d = path.Dir(d) {
		if m.platform.DirExists(d) {
			break
		}
		missing = append(missing, d)
	}

	var created []string
	for i := len(missing) - 1; i >= 0; i-- {
		if err := m.platform.MakeDir(missing[i]); err != nil {
			m.logger.Warn("Folder not created", zap.String("path", missing[i]), zap.Error(err))
			return created
		}
		created = append(created, missing[i])
	}
	if len(created) > 0 {
		m.logger.Info("Created asset folder", zap.String("path", dir))
	}
	return created
}

// legacyFolders pairs each folder setting with its legacy default.
func legacyFolders(s *settings.Settings) []struct {
	name string
	p    *string
	sub  string
} {
	return []struct {
		name string
		p    *string
		sub  string
	}{
		{"LoadFolder", &s.LoadFolder, "roms"},
		{"SaveFolder", &s.SaveFolder, "saves"},
		{"CheatFolder", &s.CheatFolder, "cheats"},
		{"ScreenshotsFolder", &s.ScreenshotsFolder, "screenshots"},
		{"CoverFolder", &s.CoverFolder, "covers"},
		{"ArtworkFolder", &s.ArtworkFolder, "artwork"},
	}
}

// RewriteFolders replaces folder settings that still hold the exact legacy
// default ("snes9x/roms") with the current one ("snes9xfx/roms"). Custom
// folders are never touched.
func RewriteFolders(s *settings.Settings) []settings.Correction {
	var out []settings.Correction
	for _, f := range legacyFolders(s) {
		legacy := settings.LegacyAppFolder + "/" + f.sub
		if *f.p != legacy {
			continue
		}
		current := settings.AppFolder + "/" + f.sub
		out = append(out, settings.Correction{Field: f.name, Old: legacy, New: current})
		*f.p = current
	}
	return out
}
