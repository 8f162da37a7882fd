package repository

import "errors"

var (
	ErrNotFound       = errors.New("repository: not found")
	ErrFailedToList   = errors.New("repository: failed to list")
	ErrFailedToCount  = errors.New("repository: failed to count")
	ErrFailedToGet    = errors.New("repository: failed to get")
	ErrFailedToDelete = errors.New("repository: failed to delete")
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrDeleted        = errors.New("repository: deleted")
)
