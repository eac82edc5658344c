package cli

import (
	"errors"
	"fmt"

	"inspira/internal/client/gateway"
	"inspira/internal/client/models"
	"inspira/internal/common"
	"inspira/internal/validate"
)

// printQuote renders one quote in full.
func printQuote(q *models.Quote, favorite bool) {
	mark := ""
	if favorite {
		mark = " ♥"
	}
	fmt.Printf("[%d] %s%s\n", q.ID, q.Titulo, mark)
	fmt.Printf("“%s”\n", q.Frase)
	if q.AutorFrase != "" {
		fmt.Printf("— %s\n", q.AutorFrase)
	}
	if q.Artist != "" {
		fmt.Printf("   %s\n", q.Artist)
	}
	if q.Categoria != "" {
		fmt.Printf("Categoria: %s\n", q.Categoria)
	}
	fmt.Printf("Curtidas: %d\n", q.CurtidasCount)
}

// printError maps error values to the short inline messages shown near the
// triggering command. No failure is silently swallowed.
func (a *App) printError(err error) {
	var ferr *validate.FieldError
	if errors.As(err, &ferr) {
		fmt.Println(ferr.Message)
		return
	}

	var serr *gateway.ServerError
	if errors.As(err, &serr) {
		fmt.Printf("O servidor recusou a solicitação (%d): %s\n", serr.StatusCode, serr.Body)
		return
	}

	switch {
	case errors.Is(err, gateway.ErrUnavailable):
		fmt.Println("Erro ao conectar. Verifique sua conexão.")
	case errors.Is(err, common.ErrAccountNotFound), errors.Is(err, common.ErrBadCredentials):
		fmt.Println("Credenciais inválidas. Tente novamente.")
	case errors.Is(err, common.ErrStorage):
		fmt.Println("Não foi possível acessar o armazenamento local.")
	default:
		fmt.Printf("Erro: %s\n", err.Error())
	}
}
