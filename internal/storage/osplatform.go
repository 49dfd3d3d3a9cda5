package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/logging"
	"github.com/muurk/snesprefs/internal/prefserr"
)

// OSPlatform maps console devices onto host folders, e.g. "sd" onto the
// mount point of an SD card reader. A device mounts when its host folder
// exists.
type OSPlatform struct {
	profile *Profile
	mounts  map[string]string
	logger  *zap.Logger
}

// NewOSPlatform creates a platform from a mount table keyed by device short
// name ("sd", "usb", "carda", ...). A nil logger uses the package logger.
func NewOSPlatform(profile *Profile, mounts map[string]string, logger *zap.Logger) *OSPlatform {
	if logger == nil {
		logger = logging.GetLogger()
	}
	m := make(map[string]string, len(mounts))
	for k, v := range mounts {
		m[k] = v
	}
	return &OSPlatform{profile: profile, mounts: m, logger: logger}
}

// HostPath translates a console path into a host path.
func (p *OSPlatform) HostPath(path string) (string, error) {
	name, rest, ok := strings.Cut(path, ":/")
	if !ok {
		return "", prefserr.NewMountError(fmt.Sprintf("%q has no device prefix", path))
	}
	root, ok := p.mounts[name]
	if !ok || root == "" {
		return "", prefserr.NewMountError(fmt.Sprintf("device %q is not mapped to a host folder", name))
	}
	return filepath.Join(root, filepath.FromSlash(rest)), nil
}

// ReadFile implements Platform.
func (p *OSPlatform) ReadFile(path string) ([]byte, error) {
	host, err := p.HostPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(host)
	if err != nil {
		return nil, prefserr.NewIOError("failed to read file", path, err)
	}
	return data, nil
}

// WriteFile implements Platform. The file is written next to its final name
// and renamed over it, so an interrupted save never leaves half a document.
func (p *OSPlatform) WriteFile(path string, data []byte, maxSize int) (int, error) {
	if maxSize > 0 && len(data) > maxSize {
		return 0, prefserr.NewCapacityError(len(data), maxSize)
	}
	host, err := p.HostPath(path)
	if err != nil {
		return 0, err
	}

	tmpPath := host + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return 0, prefserr.NewIOError("failed to write temporary file", path, err)
	}
	if err := os.Rename(tmpPath, host); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return 0, prefserr.NewIOError("failed to replace file", path, err)
	}

	p.logger.Debug("Wrote file", zap.String("path", path), zap.String("host", host), zap.Int("bytes", len(data)))
	return len(data), nil
}

// MountDevice implements Platform.
func (p *OSPlatform) MountDevice(dev int, silent bool) bool {
	name := p.profile.DeviceName(dev)
	root, ok := p.mounts[name]
	if name == "" || !ok {
		return false
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		if !silent {
			p.logger.Warn("Device folder not available", zap.String("device", name), zap.String("host", root))
		}
		return false
	}
	return true
}

// DirExists implements Platform.
func (p *OSPlatform) DirExists(path string) bool {
	host, err := p.HostPath(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(host)
	return err == nil && info.IsDir()
}

// MakeDir implements Platform.
func (p *OSPlatform) MakeDir(path string) error {
	host, err := p.HostPath(path)
	if err != nil {
		return err
	}
	if err := os.Mkdir(host, 0755); err != nil {
		if info, serr := os.Stat(host); serr == nil && info.IsDir() {
			return nil
		}
		return prefserr.NewIOError("failed to create folder", path, err)
	}
	return nil
}

// RenamePath implements Platform.
func (p *OSPlatform) RenamePath(oldPath, newPath string) error {
	from, err := p.HostPath(oldPath)
	if err != nil {
		return err
	}
	to, err := p.HostPath(newPath)
	if err != nil {
		return err
	}
	if err := os.Rename(from, to); err != nil {
		return prefserr.NewIOError("failed to rename", oldPath, err)
	}
	return nil
}
