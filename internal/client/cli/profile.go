package cli

import (
	"context"
	"fmt"
)

// avatar sets or clears the cached profile image.
func (a *App) avatar(ctx context.Context, arg string) error {
	if arg == "clear" {
		if err := a.profile.ClearImage(ctx); err != nil {
			return err
		}
		fmt.Println("Foto de perfil removida.")
		return nil
	}

	cached, err := a.profile.SetImage(ctx, arg)
	if err != nil {
		return err
	}
	fmt.Printf("Foto de perfil salva em %s.\n", cached)
	return nil
}
