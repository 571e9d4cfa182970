package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey        = errors.New("catalog: missing key")
	ErrUnsupportedLocale = errors.New("catalog: unsupported locale")
	ErrNotOptionSet      = errors.New("catalog: not an option set")
	ErrInvalidKey        = errors.New("catalog: invalid key")
	ErrDuplicateKey      = errors.New("catalog: duplicate key")
	ErrEmptyName         = errors.New("catalog: name cannot be empty")
	ErrInvalidOption     = errors.New("catalog: option set children must be leaves")
)

// MissingKeyError is returned when a key path does not resolve to a leaf.
type MissingKeyError struct {
	Catalog string
	KeyPath string
	// Group is set when the path exists but points to a group or option set.
	Group bool
}

func (e *MissingKeyError) Error() string {
	if e.Group {
		return fmt.Sprintf("catalog %q: key %q is a group, not a text", e.Catalog, e.KeyPath)
	}
	return fmt.Sprintf("catalog %q: key %q not found", e.Catalog, e.KeyPath)
}

// Is makes errors.Is(err, ErrMissingKey) match.
func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// UnsupportedLocaleError is returned for locale codes outside the supported five.
type UnsupportedLocaleError struct {
	Locale string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("catalog: unsupported locale %q", e.Locale)
}

// Is makes errors.Is(err, ErrUnsupportedLocale) match.
func (e *UnsupportedLocaleError) Is(target error) bool {
	return target == ErrUnsupportedLocale
}
