package models

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid query parameter supplied")
	ErrEmptyKey         = errors.New("empty storage key supplied")
	ErrUnauthorized     = errors.New("missing or invalid credential")
	ErrStoreUnavailable = errors.New("key-value store unavailable")
	ErrNoSavedSearch    = errors.New("requested saved search does not exist")
)
