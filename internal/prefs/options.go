package prefs

import (
	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/settings"
)

// DefaultSaveBufferSize is the largest document a save will write.
const DefaultSaveBufferSize = 512 * 1024

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used by the manager, locator and migrator.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithNotifier sets the notifier used by non-silent saves.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithSystem sets the console system configuration used for Wii defaults.
func WithSystem(sys settings.System) Option {
	return func(m *Manager) {
		m.sys = sys
	}
}

// WithSaveBufferSize limits the size of a saved document. Zero or less
// removes the limit.
func WithSaveBufferSize(n int) Option {
	return func(m *Manager) {
		m.maxSize = n
	}
}

// WithPostLoadHook registers a function run after every load attempt, e.g.
// to reapply the video mode and menu language.
func WithPostLoadHook(h func(*settings.Settings)) Option {
	return func(m *Manager) {
		if h != nil {
			m.hooks = append(m.hooks, h)
		}
	}
}

// WithReadOnly makes loads leave the storage untouched: the legacy folder is
// not renamed and no asset folders are created. Folder settings still holding
// the legacy defaults are rewritten in memory.
func WithReadOnly() Option {
	return func(m *Manager) {
		m.readOnly = true
	}
}
