package service

import "errors"

// Errors reported by the services; handlers map these onto HTTP statuses
var (
	// ErrNotFound means the requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrAccessDenied means the acting user is neither the owner nor an admin
	ErrAccessDenied = errors.New("access denied")
	// ErrDeletionBlocked means transactions still reference the record
	ErrDeletionBlocked = errors.New("record is still referenced by transactions")
)
