package storage

// Platform is the set of device and file primitives the locator and the
// migrator need. Paths are console paths: a device prefix such as "sd:/"
// followed by a slash-separated path.
type Platform interface {
	// ReadFile returns the whole file.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file with data and returns the bytes written.
	// Payloads over maxSize are refused when maxSize is positive.
	WriteFile(path string, data []byte, maxSize int) (int, error)
	// MountDevice makes a device usable. Silent mounts never prompt.
	MountDevice(dev int, silent bool) bool
	// DirExists reports whether path is a readable directory.
	DirExists(path string) bool
	// MakeDir creates one directory. An existing directory is not an error.
	MakeDir(path string) error
	// RenamePath renames a file or directory.
	RenamePath(oldPath, newPath string) error
}
