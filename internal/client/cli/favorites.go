package cli

import (
	"context"
	"fmt"
	"strconv"
)

// toggleFavorite flips the favorite mark of a quote id.
func (a *App) toggleFavorite(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("Usage: fav <id>")
		return nil
	}

	on, err := a.favorites.Toggle(ctx, id)
	if err != nil {
		// the persisted set is unchanged after a failed write; show the
		// stored state instead of trusting the optimistic flip
		if stored, rerr := a.favorites.IsFavorite(ctx, id); rerr == nil {
			fmt.Printf("Não foi possível salvar; favorito continua %s.\n", favWord(stored))
		}
		return err
	}

	fmt.Printf("Frase %d agora está %s.\n", id, favWord(on))
	return nil
}

// listFavorites prints the persisted favorite ids in insertion order.
func (a *App) listFavorites(ctx context.Context) error {
	ids, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Println("Nenhuma frase favorita ainda.")
		return nil
	}
	for _, id := range ids {
		fmt.Printf("♥ %d\n", id)
	}
	return nil
}

func favWord(fav bool) string {
	if fav {
		return "favorita"
	}
	return "sem favorito"
}
