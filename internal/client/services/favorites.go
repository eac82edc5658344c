package services

import (
	"context"
	"encoding/json"
	"fmt"

	"inspira/internal/client/repositories/kv"
	"inspira/internal/logging"
)

// FavoritesRegistry owns the set of quote ids the user marked favorite.
// The set is reloaded from the local store on every call rather than cached,
// so independent screens reading it stay consistent with the latest write.
// Order is insertion order: adds append, removes filter.
type FavoritesRegistry struct {
	kv  kv.Repository
	log logging.Logger
}

// NewFavoritesRegistry constructs a FavoritesRegistry over the local store.
func NewFavoritesRegistry(repo kv.Repository, log logging.Logger) *FavoritesRegistry {
	return &FavoritesRegistry{kv: repo, log: log}
}

func (r *FavoritesRegistry) load(ctx context.Context) ([]int64, error) {
	raw, ok, err := r.kv.Get(ctx, kv.KeyFavorites)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return ids, nil
}

func (r *FavoritesRegistry) store(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	return r.kv.Set(ctx, kv.KeyFavorites, string(raw))
}

// IsFavorite reports whether quoteID is in the persisted set.
func (r *FavoritesRegistry) IsFavorite(ctx context.Context, quoteID int64) (bool, error) {
	ids, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == quoteID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle flips membership of quoteID and writes the full set back, returning
// the new membership state. Toggling twice restores the original state.
//
// If the write fails, the persisted set is unchanged; the caller must re-read
// instead of trusting an optimistic UI update.
func (r *FavoritesRegistry) Toggle(ctx context.Context, quoteID int64) (bool, error) {
	ids, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	member := false
	next := make([]int64, 0, len(ids)+1)
	for _, id := range ids {
		if id == quoteID {
			member = true
			continue
		}
		next = append(next, id)
	}
	if !member {
		next = append(next, quoteID)
	}

	if err := r.store(ctx, next); err != nil {
		return false, err
	}

	r.log.Debug(ctx, "favorite toggled", "quote_id", quoteID, "favorite", !member)
	return !member, nil
}

// List returns the full persisted set in insertion order.
func (r *FavoritesRegistry) List(ctx context.Context) ([]int64, error) {
	return r.load(ctx)
}
