// Package prefserr defines the error taxonomy shared by the preferences
// packages.
//
// Only two kinds of failure ever reach the front-end: a load that finds no
// usable document, and a save that cannot be written. Everything else is
// recovered locally (the locator moves on to the next candidate, the
// sanitizer corrects out-of-range values) and the typed errors below exist so
// that those local decisions, and the CLI, can tell the cases apart.
package prefserr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeIO indicates a file could not be read or written
	ErrTypeIO ErrorType = iota
	// ErrTypeMount indicates no storage device could be mounted
	ErrTypeMount
	// ErrTypeFormat indicates the bytes are not a well-formed document
	ErrTypeFormat
	// ErrTypeVersion indicates a missing or malformed document version
	ErrTypeVersion
	// ErrTypeCapacity indicates the encoded document exceeds the save buffer
	ErrTypeCapacity
	// ErrTypeNotFound indicates no candidate location held a usable document
	ErrTypeNotFound
	// ErrTypeValidation indicates an out-of-range settings value
	ErrTypeValidation
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeMount:
		return "Mount Error"
	case ErrTypeFormat:
		return "Format Error"
	case ErrTypeVersion:
		return "Version Error"
	case ErrTypeCapacity:
		return "Capacity Error"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeValidation:
		return "Validation Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure of one preferences operation
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	Path    string    // File or directory involved (if any)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewIOError creates a read/write error for path
func NewIOError(message, path string, err error) *Error {
	return &Error{Type: ErrTypeIO, Message: message, Path: path, Err: err}
}

// NewMountError creates a device mount error
func NewMountError(message string) *Error {
	return &Error{Type: ErrTypeMount, Message: message}
}

// NewFormatError creates a document format error
func NewFormatError(message string, err error) *Error {
	return &Error{Type: ErrTypeFormat, Message: message, Err: err}
}

// NewVersionError creates a document version error
func NewVersionError(message string) *Error {
	return &Error{Type: ErrTypeVersion, Message: message}
}

// NewCapacityError creates an error for a document larger than max bytes
func NewCapacityError(size, max int) *Error {
	return &Error{
		Type:    ErrTypeCapacity,
		Message: fmt.Sprintf("document is %d bytes, save buffer holds %d", size, max),
	}
}

// NewNotFoundError creates an error for an exhausted candidate list
func NewNotFoundError(message string) *Error {
	return &Error{Type: ErrTypeNotFound, Message: message}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{Type: ErrTypeValidation, Message: message}
}

// WithPath returns a copy of err annotated with path
func WithPath(err error, path string) error {
	var pe *Error
	if errors.As(err, &pe) {
		c := *pe
		c.Path = path
		return &c
	}
	return err
}

func typeOf(err error) (ErrorType, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Type, true
	}
	return 0, false
}

func is(err error, et ErrorType) bool {
	t, ok := typeOf(err)
	return ok && t == et
}

// IsIOError checks if an error is a read/write error
func IsIOError(err error) bool { return is(err, ErrTypeIO) }

// IsMountError checks if an error is a mount error
func IsMountError(err error) bool { return is(err, ErrTypeMount) }

// IsFormatError checks if an error is a document format error
func IsFormatError(err error) bool { return is(err, ErrTypeFormat) }

// IsVersionError checks if an error is a document version error
func IsVersionError(err error) bool { return is(err, ErrTypeVersion) }

// IsCapacityError checks if an error is a save buffer overflow
func IsCapacityError(err error) bool { return is(err, ErrTypeCapacity) }

// IsNotFoundError checks if an error is an exhausted candidate list
func IsNotFoundError(err error) bool { return is(err, ErrTypeNotFound) }

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool { return is(err, ErrTypeValidation) }

// IsDocumentError reports whether err rejects a document as a whole. The
// locator treats these like an unreadable file and moves on.
func IsDocumentError(err error) bool {
	return IsFormatError(err) || IsVersionError(err)
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	t, ok := typeOf(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch t {
	case ErrTypeMount:
		return strings.Join([]string{
			"No storage device could be used.",
			"Troubleshooting:",
			"  • Check that an SD card or USB drive is inserted",
			"  • Map a device to a host folder: snesprefs config mount sd /path/to/card",
			"  • Use --mount sd=/path/to/card for a one-off run",
		}, "\n")

	case ErrTypeIO:
		return strings.Join([]string{
			"A preferences file could not be read or written.",
			"Troubleshooting:",
			"  • Check the card is not write-protected",
			"  • Check there is free space on the device",
			"  • Verify folder permissions on the host",
		}, "\n")

	case ErrTypeFormat:
		return strings.Join([]string{
			"The preferences file is not a valid settings.xml document.",
			"Troubleshooting:",
			"  • The file may be truncated; restore it from a backup",
			"  • Run 'snesprefs defaults' to write a fresh file",
		}, "\n")

	case ErrTypeVersion:
		return strings.Join([]string{
			"The preferences file has a missing or unsupported version.",
			"Only versions written as X.Y.Z (single digits) are accepted.",
			"Troubleshooting:",
			"  • Fix the version attribute of the <file> element",
			"  • Run 'snesprefs defaults' to write a fresh file",
		}, "\n")

	case ErrTypeCapacity:
		return "The settings document is larger than the save buffer. Shorten long folder names."

	case ErrTypeNotFound:
		return strings.Join([]string{
			"No preferences file was found on any device.",
			"Defaults are in effect; saving will create a new file.",
			"Run 'snesprefs probe' to see every location that was checked.",
		}, "\n")

	case ErrTypeValidation:
		return "Some values are out of range. They will be reset to defaults when saved."

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var pe *Error
	if !errors.As(err, &pe) {
		return err.Error()
	}

	switch pe.Type {
	case ErrTypeMount:
		return "No storage device available"
	case ErrTypeIO:
		return "Cannot access preferences file"
	case ErrTypeFormat:
		return "Preferences file is corrupt"
	case ErrTypeVersion:
		return "Preferences file version not supported"
	case ErrTypeCapacity:
		return "Preferences too large to save"
	case ErrTypeNotFound:
		return "No preferences file found"
	default:
		return pe.Message
	}
}
