// Package logging provides structured logging for snesprefs.
//
// This package wraps zap logger with convenience functions for the events
// that matter when preferences go missing: which locations were probed and
// why they were rejected, which values were reset, and which legacy names
// were migrated.
//
// # Log Levels
//
//   - Debug: rejected probe candidates, document heads
//   - Info: loaded/saved locations, corrections, migrations
//   - Warn: best-effort steps that failed (folder rename, asset folders)
//   - Error: save failures
//
// # Silent by Default
//
// Without a level, GetLogger returns a no-op logger so command output stays
// clean. Set SNESPREFS_LOG_LEVEL or pass --log-level to see what happens:
//
//	SNESPREFS_LOG_LEVEL=debug snesprefs probe
//
// Output goes to stderr so `snesprefs show --format xml > settings.xml`
// never captures log lines.
//
// # Specialized Logging
//
//	logging.LogProbeAttempt(l, "sd:/apps/snes9xfx/settings.xml", "sd", err)
//	logging.LogCorrection(l, "MusicVolume", "150", "80")
//	logging.LogMigration(l, "rename", "sd:/snes9x", "sd:/snes9xfx")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
