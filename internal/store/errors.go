package store

import "strings"

// IsBusyError checks if the error is a SQLITE_BUSY error. This occurs
// when the database is locked by another connection.
func IsBusyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLITE_BUSY")
}

// IsLockedError checks if the error is a "database is locked" error.
func IsLockedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "database is locked")
}

// IsConflictError checks for either SQLite concurrency error. Both
// typically warrant retry with backoff.
func IsConflictError(err error) bool {
	return IsBusyError(err) || IsLockedError(err)
}
