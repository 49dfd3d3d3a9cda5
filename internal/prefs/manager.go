package prefs

import (
	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/logging"
	"github.com/muurk/snesprefs/internal/migrate"
	"github.com/muurk/snesprefs/internal/prefdoc"
	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
	"github.com/muurk/snesprefs/internal/storage"
)

// Manager owns the live settings of one front-end process and loads and
// saves them. It is not safe for concurrent use.
type Manager struct {
	settings *settings.Settings
	target   settings.Target
	sys      settings.System

	platform storage.Platform
	locator  *storage.Locator
	migrator *migrate.Migrator

	notifier Notifier
	logger   *zap.Logger
	maxSize  int
	hooks    []func(*settings.Settings)
	readOnly bool

	attempted   bool
	loaded      bool
	probe       *storage.Result
	corrections []settings.Correction
	migration   migrate.Report
}

// New creates a manager holding the factory defaults for profile's target.
func New(platform storage.Platform, profile *storage.Profile, opts ...Option) *Manager {
	m := &Manager{
		target:   profile.Target,
		platform: platform,
		notifier: nopNotifier{},
		logger:   logging.GetLogger(),
		maxSize:  DefaultSaveBufferSize,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.settings = settings.DefaultSettings(m.target, m.sys)
	m.locator = storage.NewLocator(platform, profile, m.logger)
	m.migrator = migrate.New(platform, profile, m.logger)
	return m
}

// Settings returns the live settings. The pointer stays valid across loads
// and RestoreDefaults.
func (m *Manager) Settings() *settings.Settings {
	return m.settings
}

// Target returns the target the manager writes documents for.
func (m *Manager) Target() settings.Target {
	return m.target
}

// Locator returns the storage locator.
func (m *Manager) Locator() *storage.Locator {
	return m.locator
}

// PrefPath returns the folder the preferences were loaded from or saved to.
func (m *Manager) PrefPath() string {
	return m.locator.PrefPath()
}

// Loaded reports whether a document was found and applied.
func (m *Manager) Loaded() bool {
	return m.loaded
}

// Attempted reports whether LoadPreferences has run.
func (m *Manager) Attempted() bool {
	return m.attempted
}

// Probe returns the result of the load probe, or nil before the first load.
func (m *Manager) Probe() *storage.Result {
	return m.probe
}

// Corrections returns the values the sanitizer replaced after loading.
func (m *Manager) Corrections() []settings.Correction {
	return m.corrections
}

// Migration returns what the legacy-name migration changed after loading.
func (m *Manager) Migration() migrate.Report {
	return m.migration
}

// LoadPreferences looks for a preferences document and applies it over the
// current settings. Only the first call probes the devices; later calls
// return the first outcome. When no document is found the settings keep
// their defaults.
func (m *Manager) LoadPreferences() bool {
	if m.attempted {
		return m.loaded
	}
	m.attempted = true

	res, err := m.locator.Probe()
	m.probe = res
	if err != nil {
		m.logger.Info("No preferences found, using defaults", zap.Int("locations", len(res.Attempts)))
	} else {
		res.Document.Apply(m.settings)
		m.corrections = m.ValidateAndClamp()
		m.migration = m.runMigration()
		m.loaded = true
	}

	for _, h := range m.hooks {
		h(m.settings)
	}
	return m.loaded
}

func (m *Manager) runMigration() migrate.Report {
	if !m.readOnly {
		return m.migrator.Run(m.settings)
	}
	r := migrate.Report{Rewritten: migrate.RewriteFolders(m.settings)}
	for _, c := range r.Rewritten {
		logging.LogMigration(m.logger, "rewrite "+c.Field, c.Old, c.New)
	}
	return r
}

// Snapshot is an encoded preferences document and the file it belongs in.
type Snapshot struct {
	Path string
	Dir  string
	Data []byte
}

// Save sanitizes the settings and writes them to the resolved save target.
// A silent save never calls the notifier.
func (m *Manager) Save(silent bool) error {
	snap, err := m.PrepareSave(silent)
	if err != nil {
		return err
	}
	if err := m.write(snap); err != nil {
		return m.fail(silent, err)
	}
	if !silent {
		m.notifier.CancelAction()
		m.notifier.InfoPrompt("Preferences saved")
	}
	return nil
}

// PrepareSave resolves the save target, sanitizes the live settings and
// encodes them. The snapshot shares no memory with the settings, so it can
// be handed to WriteSnapshot on another goroutine while editing goes on.
func (m *Manager) PrepareSave(silent bool) (*Snapshot, error) {
	path, err := m.locator.ResolveSaveTarget(silent)
	if err != nil {
		return nil, m.fail(silent, err)
	}

	if !silent {
		m.notifier.ShowAction("Saving preferences...")
	}

	m.ValidateAndClamp()

	data, err := prefdoc.Encode(m.settings, m.target, m.maxSize)
	if err != nil {
		return nil, m.fail(silent, err)
	}
	return &Snapshot{Path: path, Dir: m.locator.PrefPath(), Data: data}, nil
}

// WriteSnapshot silently writes a document made by PrepareSave. It reads
// nothing but the manager's platform and limits.
func (m *Manager) WriteSnapshot(snap *Snapshot) error {
	if err := m.write(snap); err != nil {
		return m.fail(true, err)
	}
	return nil
}

func (m *Manager) write(snap *Snapshot) error {
	logging.LogDocument(m.logger, "Writing preferences document", snap.Path, snap.Data)

	n, err := m.platform.WriteFile(snap.Path, snap.Data, m.maxSize)
	if err == nil && n <= 0 {
		err = prefserr.NewIOError("nothing written", snap.Path, nil)
	}
	if err != nil {
		return err
	}

	m.logger.Info("Preferences saved", zap.String("path", snap.Path), zap.Int("bytes", n))
	return nil
}

func (m *Manager) fail(silent bool, err error) error {
	m.logger.Error("Failed to save preferences", zap.Error(err))
	if !silent {
		m.notifier.CancelAction()
		m.notifier.ErrorPrompt(prefserr.GetShortErrorMessage(err))
	}
	return err
}

// SavePreferences is Save reporting only success.
func (m *Manager) SavePreferences(silent bool) bool {
	return m.Save(silent) == nil
}

// RestoreDefaults replaces every setting, including the button maps, with
// the factory defaults. The resolved save folder is kept.
func (m *Manager) RestoreDefaults() {
	*m.settings = *settings.DefaultSettings(m.target, m.sys)
}

// ValidateAndClamp resets out-of-range values to their defaults and
// returns what it changed.
func (m *Manager) ValidateAndClamp() []settings.Correction {
	cs := settings.Sanitize(m.settings)
	for _, c := range cs {
		logging.LogCorrection(m.logger, c.Field, c.Old, c.New)
	}
	return cs
}
