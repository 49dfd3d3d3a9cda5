package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/config"
	"github.com/muurk/snesprefs/internal/logging"
	"github.com/muurk/snesprefs/internal/prefs"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
	"github.com/muurk/snesprefs/internal/ui"
)

// Global flags
var (
	configPath string
	targetName string
	mountFlags []string
	dryRun     bool
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: OS config directory)")
	rootCmd.PersistentFlags().StringVar(&targetName, "target", "", "Console layout: wii or gamecube (overrides config)")
	rootCmd.PersistentFlags().StringArrayVar(&mountFlags, "mount", nil, "Map a console device to a host folder, e.g. sd=/media/SDCARD (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Keep every write in memory and report what would change")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+" or silent)")
}

// initLogging sets up the logger before any command runs. The flag wins
// over the configuration file, which wins over the environment.
func initLogging() error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}

	level := logLevel
	if level == "" {
		if reg, err := config.LoadRegistry(); err == nil && reg.Preferences != nil {
			level = reg.Preferences.LogLevel
		}
	}
	return logging.Initialize(level)
}

// session is everything a command needs to work on one preferences document
type session struct {
	registry *config.Registry
	target   settings.Target
	profile  *storage.Profile
	host     *storage.OSPlatform
	overlay  *storage.MemPlatform // set with --dry-run
	manager  *prefs.Manager
	logger   *zap.Logger
}

// sessionMode says whether a command may change the card
type sessionMode int

const (
	readOnly sessionMode = iota
	readWrite
)

// openSession builds the platform and manager from the configuration and
// the global flags, then loads the preferences. A read-only session keeps
// every write in memory and skips the folder migration, so the card is left
// exactly as it was found.
func openSession(cmd *cobra.Command, mode sessionMode) (*session, error) {
	reg, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	target, err := reg.TargetValue()
	if err != nil {
		return nil, err
	}
	if targetName != "" {
		t, ok := settings.ParseTarget(strings.ToLower(targetName))
		if !ok {
			return nil, fmt.Errorf("unknown target %q (expected wii or gamecube)", targetName)
		}
		target = t
	}

	profile := storage.NewProfile(target, reg.AppPath)

	mounts, err := mergeMounts(reg.Mounts, mountFlags)
	if err != nil {
		return nil, err
	}
	if err := checkDevices(profile, mounts); err != nil {
		return nil, err
	}

	logger := logging.GetLogger()
	s := &session{
		registry: reg,
		target:   target,
		profile:  profile,
		host:     storage.NewOSPlatform(profile, mounts, logger),
		logger:   logger,
	}

	var platform storage.Platform = s.host
	switch {
	case mode == readOnly:
		platform = storage.NewOverlay(s.host)
	case dryRun:
		s.overlay = storage.NewOverlay(s.host)
		platform = s.overlay
	}

	opts := []prefs.Option{
		prefs.WithLogger(logger),
		prefs.WithSystem(reg.SystemValue()),
		prefs.WithNotifier(ui.NewNotifier(cmd.OutOrStdout(), ui.IsTerminal())),
	}
	if reg.Preferences != nil && reg.Preferences.SaveBufferSize > 0 {
		opts = append(opts, prefs.WithSaveBufferSize(reg.Preferences.SaveBufferSize))
	}
	if mode == readOnly {
		opts = append(opts, prefs.WithReadOnly())
	}

	s.manager = prefs.New(platform, profile, opts...)
	s.manager.LoadPreferences()
	return s, nil
}

// reportDryRun lists the writes an overlay kept in memory
func (s *session) reportDryRun(p *ui.Printer) {
	if s.overlay == nil {
		return
	}
	details := []ui.Param{}
	for _, f := range s.overlay.Files() {
		data, _ := s.overlay.File(f)
		details = append(details, ui.Param{Key: "Would write", Value: fmt.Sprintf("%s (%d bytes)", f, len(data))})
	}
	for _, c := range s.overlay.CallsWith("mkdir") {
		details = append(details, ui.Param{Key: "Would create", Value: strings.TrimPrefix(c, "mkdir ")})
	}
	for _, c := range s.overlay.CallsWith("rename") {
		details = append(details, ui.Param{Key: "Would rename", Value: strings.TrimPrefix(c, "rename ")})
	}
	if len(details) == 0 {
		details = append(details, ui.Param{Key: "Changes", Value: "none"})
	}
	p.PrintWarning("Dry run: nothing was written", details...)
}

// mergeMounts overlays --mount flags on the configured mount table
func mergeMounts(configured map[string]string, flags []string) (map[string]string, error) {
	mounts := make(map[string]string, len(configured)+len(flags))
	for dev, dir := range configured {
		mounts[dev] = dir
	}
	for _, f := range flags {
		dev, dir, err := parseMount(f)
		if err != nil {
			return nil, err
		}
		mounts[dev] = dir
	}
	return mounts, nil
}

// parseMount splits "device=dir". The device name is lowercased and may
// carry the console suffix, e.g. "sd:" or "sd:/".
func parseMount(s string) (string, string, error) {
	dev, dir, ok := strings.Cut(s, "=")
	dev = strings.TrimSuffix(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(dev)), "/"), ":")
	dir = strings.TrimSpace(dir)
	if !ok || dev == "" || dir == "" {
		return "", "", fmt.Errorf("invalid mount %q (expected device=dir, e.g. sd=/media/SDCARD)", s)
	}
	return dev, dir, nil
}

// checkDevices rejects mounts for devices the target does not have and
// warns about host folders that do not exist yet.
func checkDevices(profile *storage.Profile, mounts map[string]string) error {
	names := make([]string, 0, len(mounts))
	for dev := range mounts {
		names = append(names, dev)
	}
	sort.Strings(names)

	for _, dev := range names {
		if _, ok := profile.DeviceByName(dev); !ok {
			return fmt.Errorf("device %q does not exist on %s (expected one of: %s)",
				dev, profile.Target, strings.Join(profile.DeviceNames(), ", "))
		}
		if info, err := os.Stat(mounts[dev]); err != nil || !info.IsDir() {
			logging.Warn("Mounted folder is not available", zap.String("device", dev), zap.String("dir", mounts[dev]))
		}
	}
	return nil
}
