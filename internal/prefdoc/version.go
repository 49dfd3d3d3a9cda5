package prefdoc

import (
	"fmt"

	"github.com/muurk/snesprefs/internal/prefserr"
)

// Version is a parsed X.Y.Z document version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	for _, d := range [][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}} {
		if d[0] < d[1] {
			return -1
		}
		if d[0] > d[1] {
			return 1
		}
	}
	return 0
}

// ParseVersion accepts exactly five bytes of the form D.D.D where each D is
// a single decimal digit. "21.0.0", "2.1" and "a.b.c" are all rejected.
func ParseVersion(s string) (Version, error) {
	if len(s) != 5 {
		return Version{}, prefserr.NewVersionError(fmt.Sprintf("version %q is not in X.Y.Z form", s))
	}
	if s[1] != '.' || s[3] != '.' || !isDigit(s[0]) || !isDigit(s[2]) || !isDigit(s[4]) {
		return Version{}, prefserr.NewVersionError(fmt.Sprintf("version %q is not in X.Y.Z form", s))
	}
	return Version{
		Major: int(s[0] - '0'),
		Minor: int(s[2] - '0'),
		Patch: int(s[4] - '0'),
	}, nil
}

// CheckVersion reports whether s is an acceptable document version.
func CheckVersion(s string) error {
	_, err := ParseVersion(s)
	return err
}

// Validate is the all-or-nothing gate applied before any field is copied
// out of a document. A document without a version attribute is rejected,
// the same as one with a malformed version.
func (d *Document) Validate() error {
	v, ok := d.Version()
	if !ok {
		return prefserr.NewVersionError("document has no version attribute")
	}
	return CheckVersion(v)
}
