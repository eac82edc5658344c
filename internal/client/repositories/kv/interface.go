// Package kv implements the device-local key-value store. Every read goes
// straight to durable storage; no in-memory cache layer sits in between, so
// independent readers always observe the latest persisted write.
package kv

import "context"

// Persisted keys used by the client.
const (
	KeySession      = "session"
	KeyFavorites    = "favorites"
	KeyProfileImage = "profileImage"
	KeyUserID       = "usuarioId"
)

// Repository is durable string-keyed storage scoped to the installation.
type Repository interface {
	// Get returns the stored value and true, or ok=false for a missing key.
	// A missing key is never an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites any existing value for key.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key if present; no-op otherwise.
	Remove(ctx context.Context, key string) error
}
