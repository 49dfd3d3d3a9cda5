package storage

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/muurk/snesprefs/internal/prefserr"
)

// MemPlatform keeps files and folders in memory. With a Base platform it
// becomes an overlay: reads fall through to Base and writes stay in memory,
// which is how --dry-run previews a save.
type MemPlatform struct {
	Base Platform

	files     map[string][]byte
	dirs      map[string]bool
	mountable map[int]bool

	// Calls records every primitive invoked, e.g. "read sd:/snes9xfx/settings.xml".
	Calls []string

	FailWrites bool
	FailMkdir  bool
	FailRename bool
}

// NewMemPlatform returns an empty platform on which no device mounts.
func NewMemPlatform() *MemPlatform {
	return &MemPlatform{
		files:     make(map[string][]byte),
		dirs:      make(map[string]bool),
		mountable: make(map[int]bool),
	}
}

// NewOverlay returns a platform that reads through to base and keeps writes.
func NewOverlay(base Platform) *MemPlatform {
	m := NewMemPlatform()
	m.Base = base
	return m
}

// SetMountable marks devices as mountable.
func (m *MemPlatform) SetMountable(devs ...int) {
	for _, d := range devs {
		m.mountable[d] = true
	}
}

// AddFile stores a file and creates its parent folders.
func (m *MemPlatform) AddFile(p string, data []byte) {
	m.files[p] = append([]byte(nil), data...)
	m.AddDir(path.Dir(p))
}

// AddDir creates a folder and its parents, down to the device root.
func (m *MemPlatform) AddDir(p string) {
	for strings.Contains(p, "/") && !strings.HasSuffix(p, ":/") {
		m.dirs[p] = true
		p = path.Dir(p)
	}
}

// File returns a stored file.
func (m *MemPlatform) File(p string) ([]byte, bool) {
	data, ok := m.files[p]
	return data, ok
}

// Files returns the paths of every stored file, sorted.
func (m *MemPlatform) Files() []string {
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// CallsWith returns the recorded calls starting with verb.
func (m *MemPlatform) CallsWith(verb string) []string {
	var out []string
	for _, c := range m.Calls {
		if strings.HasPrefix(c, verb+" ") {
			out = append(out, c)
		}
	}
	return out
}

func (m *MemPlatform) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

// ReadFile implements Platform.
func (m *MemPlatform) ReadFile(p string) ([]byte, error) {
	m.record("read %s", p)
	if data, ok := m.files[p]; ok {
		return append([]byte(nil), data...), nil
	}
	if m.Base != nil {
		return m.Base.ReadFile(p)
	}
	return nil, prefserr.NewIOError("file not found", p, nil)
}

// WriteFile implements Platform.
func (m *MemPlatform) WriteFile(p string, data []byte, maxSize int) (int, error) {
	m.record("write %s", p)
	if maxSize > 0 && len(data) > maxSize {
		return 0, prefserr.NewCapacityError(len(data), maxSize)
	}
	if m.FailWrites {
		return 0, prefserr.NewIOError("write failed", p, nil)
	}
	m.files[p] = append([]byte(nil), data...)
	return len(data), nil
}

// MountDevice implements Platform.
func (m *MemPlatform) MountDevice(dev int, silent bool) bool {
	m.record("mount %d silent=%t", dev, silent)
	if m.mountable[dev] {
		return true
	}
	if m.Base != nil {
		return m.Base.MountDevice(dev, silent)
	}
	return false
}

// DirExists implements Platform.
func (m *MemPlatform) DirExists(p string) bool {
	if m.dirs[p] {
		return true
	}
	if m.Base != nil {
		return m.Base.DirExists(p)
	}
	return false
}

// MakeDir implements Platform.
func (m *MemPlatform) MakeDir(p string) error {
	m.record("mkdir %s", p)
	if m.FailMkdir {
		return prefserr.NewIOError("mkdir failed", p, nil)
	}
	m.dirs[p] = true
	return nil
}

// RenamePath implements Platform. Renaming a folder moves everything below it.
func (m *MemPlatform) RenamePath(oldPath, newPath string) error {
	m.record("rename %s %s", oldPath, newPath)
	if m.FailRename {
		return prefserr.NewIOError("rename failed", oldPath, nil)
	}

	under := func(p string) bool { return p == oldPath || strings.HasPrefix(p, oldPath+"/") }

	var dirs, files []string
	for d := range m.dirs {
		if under(d) {
			dirs = append(dirs, d)
		}
	}
	for f := range m.files {
		if under(f) {
			files = append(files, f)
		}
	}
	for _, d := range dirs {
		delete(m.dirs, d)
		m.dirs[newPath+strings.TrimPrefix(d, oldPath)] = true
	}
	for _, f := range files {
		data := m.files[f]
		delete(m.files, f)
		m.files[newPath+strings.TrimPrefix(f, oldPath)] = data
	}

	moved := len(dirs)+len(files) > 0
	if !moved {
		return prefserr.NewIOError("no such file or folder", oldPath, nil)
	}
	return nil
}
