// Package common defines shared constants and sentinel errors used across
// the Inspira client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors returned by the session manager.
	ErrAccountNotFound = errors.New("account not found")
	ErrBadCredentials  = errors.New("bad credentials")

	// Storage errors (device persistence unavailable or a rejected write).
	ErrStorage = errors.New("local storage unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
