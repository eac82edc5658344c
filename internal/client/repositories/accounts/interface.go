// Package accounts implements the local account table owned by the client
// database. Accounts are immutable once created.
package accounts

import (
	"context"

	"inspira/internal/client/models"
)

// Repository describes storage operations for UserAccount records.
// Implementations are typically backed by the local SQLite database.
type Repository interface {
	// Create inserts a new account. The id must be unique.
	Create(ctx context.Context, account *models.UserAccount) error

	// GetByEmail returns the account registered under email, or
	// common.ErrorNotFound if no account matches.
	GetByEmail(ctx context.Context, email string) (*models.UserAccount, error)

	// GetByID returns the account with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.UserAccount, error)

	// Count returns the number of stored accounts.
	Count(ctx context.Context) (int64, error)
}
