package storage

import (
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/muurk/snesprefs/internal/logging"
	"github.com/muurk/snesprefs/internal/prefdoc"
	"github.com/muurk/snesprefs/internal/prefserr"
	"github.com/muurk/snesprefs/internal/settings"
)

// Attempt records the outcome of reading one candidate.
type Attempt struct {
	Candidate Candidate
	Path      string
	Err       error // nil for the accepted candidate
}

// Result is the outcome of a probe.
type Result struct {
	// Document and Candidate are set only when a candidate was accepted.
	Document  *prefdoc.Document
	Candidate Candidate
	Path      string

	// Attempts lists every candidate tried, in order. Candidates after the
	// accepted one are never tried and do not appear.
	Attempts []Attempt
}

// Found reports whether a document was accepted.
func (r *Result) Found() bool {
	return r.Document != nil
}

// Locator finds the preferences document on load and resolves where it is
// written on save. It remembers the folder it resolved so later saves go to
// the same place.
type Locator struct {
	platform Platform
	profile  *Profile
	logger   *zap.Logger

	prefPath string
}

// NewLocator creates a locator. A nil logger uses the package logger.
func NewLocator(platform Platform, profile *Profile, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Locator{platform: platform, profile: profile, logger: logger}
}

// Profile returns the profile the locator works with.
func (l *Locator) Profile() *Profile {
	return l.profile
}

// PrefPath returns the folder resolved by the last successful probe or
// save, or "" if nothing has been resolved yet.
func (l *Locator) PrefPath() string {
	return l.prefPath
}

// Probe tries each candidate in order and stops at the first one whose
// document reads, parses and passes the version check. Failures of any kind
// move on to the next candidate. If no candidate is accepted the error is a
// not-found error and the result still lists every attempt.
func (l *Locator) Probe() (*Result, error) {
	res := &Result{}

	for _, c := range l.profile.Candidates() {
		file := c.File(prefdoc.FileName)
		doc, err := l.try(c, file)
		logging.LogProbeAttempt(l.logger, file, l.profile.DeviceName(c.Device), err)
		res.Attempts = append(res.Attempts, Attempt{Candidate: c, Path: file, Err: err})
		if err != nil {
			continue
		}

		res.Document = doc
		res.Candidate = c
		res.Path = file

		l.prefPath = c.Dir
		if l.profile.AppPath == "" {
			l.profile.AppPath = c.Dir
		}
		return res, nil
	}

	return res, prefserr.NewNotFoundError(
		fmt.Sprintf("no preferences document in %d locations", len(res.Attempts)))
}

func (l *Locator) try(c Candidate, file string) (*prefdoc.Document, error) {
	if c.Device != settings.DeviceAuto && !l.platform.MountDevice(c.Device, true) {
		return nil, prefserr.NewMountError(fmt.Sprintf("%s not available", settings.DeviceName(c.Device)))
	}

	data, err := l.platform.ReadFile(file)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, prefserr.NewIOError("empty file", file, nil)
	}
	logging.LogDocument(l.logger, "Read preferences document", file, data)

	doc, err := prefdoc.Decode(data)
	if err != nil {
		return nil, prefserr.WithPath(err, file)
	}
	return doc, nil
}

// ResolveSaveTarget returns the path the document is written to. The
// folder of a previous probe or save is reused, then the launch folder.
// Otherwise the first save device that mounts gets an application folder,
// created together with its roms and saves subfolders when it is missing.
func (l *Locator) ResolveSaveTarget(silent bool) (string, error) {
	dir := l.prefPath
	if dir == "" {
		dir = l.profile.AppPath
	}

	if dir != "" {
		dev := l.profile.DeviceOf(dir)
		if dev == settings.DeviceAuto {
			return "", prefserr.NewMountError(fmt.Sprintf("no device for %s", dir))
		}
		if !l.platform.MountDevice(dev, silent) {
			return "", prefserr.NewMountError(fmt.Sprintf("%s not available", settings.DeviceName(dev)))
		}
		l.prefPath = dir
		return path.Join(dir, prefdoc.FileName), nil
	}

	for _, dev := range l.profile.SaveDevices {
		if !l.platform.MountDevice(dev, silent) {
			l.logger.Debug("Save device not available", zap.String("device", l.profile.DeviceName(dev)))
			continue
		}

		root := l.profile.Root(dev)
		if err := l.ensureRoot(root); err != nil {
			return "", err
		}
		l.prefPath = root
		return path.Join(root, prefdoc.FileName), nil
	}

	return "", prefserr.NewMountError("no storage device available for saving")
}

// ensureRoot creates the application folder and its required subfolders
// when the folder cannot be listed.
func (l *Locator) ensureRoot(root string) error {
	if l.platform.DirExists(root) {
		return nil
	}
	for _, dir := range []string{root, root + "/roms", root + "/saves"} {
		if err := l.platform.MakeDir(dir); err != nil {
			return prefserr.NewIOError("failed to create folder", dir, err)
		}
		l.logger.Info("Created folder", zap.String("path", dir))
	}
	return nil
}
