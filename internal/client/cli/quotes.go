package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"inspira/internal/client/models"
	"inspira/internal/client/services"
)

// listQuotes fetches the full collection and prints it, marking favorites.
// When categoria is non-empty the listing is filtered client-side; the API
// has no filter parameter.
func (a *App) listQuotes(ctx context.Context, categoria string) error {
	quotes, err := a.quotes.ListQuotes(ctx)
	if err != nil {
		return err
	}

	favorites, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}
	favSet := make(map[int64]struct{}, len(favorites))
	for _, id := range favorites {
		favSet[id] = struct{}{}
	}

	shown := 0
	for _, q := range quotes {
		if categoria != "" && !strings.EqualFold(q.Categoria, categoria) {
			continue
		}
		mark := "  "
		if _, ok := favSet[q.ID]; ok {
			mark = "♥ "
		}
		fmt.Printf("%s[%d] %s — %s (%s)\n", mark, q.ID, q.Titulo, q.AutorFrase, q.Categoria)
		shown++
	}
	fmt.Printf("%d frases\n", shown)
	return nil
}

// showQuote prints one quote in full, by id, from a fresh fetch.
func (a *App) showQuote(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		fmt.Println("Usage: show <id>")
		return nil
	}

	quotes, err := a.quotes.ListQuotes(ctx)
	if err != nil {
		return err
	}

	for _, q := range quotes {
		if q.ID != id {
			continue
		}
		fav, err := a.favorites.IsFavorite(ctx, q.ID)
		if err != nil {
			return err
		}
		printQuote(&q, fav)
		return nil
	}

	fmt.Printf("Frase %d não encontrada.\n", id)
	return nil
}

// createQuote prompts for the quote fields and submits them via the gateway.
// The creator id comes from the persisted usuarioId, falling back to the
// documented default when absent.
func (a *App) createQuote(ctx context.Context) error {
	titulo, err := getSimpleText(a.reader, "Título", os.Stdout)
	if err != nil {
		return err
	}
	frase, err := GetMultiline(a.reader, "Frase", os.Stdout)
	if err != nil {
		return err
	}
	autor, err := getSimpleText(a.reader, "Autor", os.Stdout)
	if err != nil {
		return err
	}
	categoria, err := getSimpleText(a.reader, "Categoria", os.Stdout)
	if err != nil {
		return err
	}
	artist, err := getSimpleText(a.reader, "Artista (opcional)", os.Stdout)
	if err != nil {
		return err
	}

	usuarioID, ok, err := a.session.UserID(ctx)
	if err != nil {
		return err
	}
	if !ok {
		usuarioID = services.DefaultUserID
	}

	quote, err := a.quotes.CreateQuote(ctx, models.QuoteDraft{
		Frase:      frase,
		Titulo:     titulo,
		AutorFrase: autor,
		Categoria:  categoria,
		Artist:     artist,
		UsuarioID:  usuarioID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Frase criada com id %d.\n", quote.ID)
	return nil
}
