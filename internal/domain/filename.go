package domain

import (
	"strings"
)

// ForbiddenFilenameChars lists the characters rejected in user supplied
// filenames.
const ForbiddenFilenameChars = `<>:"/\|?*`

// ExistsFunc reports whether name resolves to an existing filesystem entry.
type ExistsFunc func(name string) bool

// ValidateFilename trims raw and checks it against the filename rules in
// order: non-empty, existing (when exists is non-nil), no forbidden
// characters. The trimmed name is returned even on failure so callers can
// report it.
func ValidateFilename(raw string, exists ExistsFunc) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return name, ErrEmptyFilename
	}
	if exists != nil && !exists(name) {
		return name, ErrFileNotExist
	}
	if strings.ContainsAny(name, ForbiddenFilenameChars) {
		return name, ErrInvalidFilename
	}
	return name, nil
}
