// Package gateway translates quote intents into HTTP requests against the
// remote quote service. It performs no retry, caching, or pagination: every
// list call is a full fetch, and a transient failure requires a new
// user-initiated action.
package gateway

import (
	"context"

	"inspira/internal/client/models"
)

// Client is the remote quote service surface consumed by the app.
type Client interface {
	// CreateQuote validates the required draft fields locally first
	// (*validate.FieldError, before any network call), then submits the
	// quote and returns the server-created record.
	CreateQuote(ctx context.Context, draft models.QuoteDraft) (*models.Quote, error)

	// ListQuotes fetches the full quote collection.
	ListQuotes(ctx context.Context) ([]models.Quote, error)
}
