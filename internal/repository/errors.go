package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique constraint rejects an insert.
	ErrConflict = errors.New("unique constraint violated")
	// ErrInactive is returned when a counter update targets a soft-deleted url.
	ErrInactive = errors.New("url is inactive")
)

// isDuplicateKey recognises unique violations from every supported driver, including
// drivers that do not translate them into gorm.ErrDuplicatedKey.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
