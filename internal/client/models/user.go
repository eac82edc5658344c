// Package models defines client-side data models used by the Inspira CLI.
package models

import "time"

// UserAccount is a locally registered account. Accounts are created by
// sign-up, never mutated afterwards.
type UserAccount struct {
	// ID is an opaque unique identifier assigned at creation time
	// (time-derived decimal string).
	ID string `json:"id"`

	// Name is the display name, at least 3 characters after trimming.
	Name string `json:"name"`

	// Email must match the basic local@domain.tld shape. Not verified
	// for deliverability.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password. Never
	// serialized into the session record.
	PasswordHash string `json:"-"`

	// CreatedAt is the creation timestamp, immutable.
	CreatedAt time.Time `json:"createdAt"`
}
