package cli

import (
	"context"
	"fmt"
	"os"

	"inspira/internal/common"
	"inspira/internal/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up fields and creates a new account via the
// session manager. Registration never signs the user in; the account holder
// logs in afterwards, as on the mobile app's register screen.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Nome", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) > 0 {
		score := validate.PasswordStrength(string(password))
		fmt.Printf("Força da senha: %s\n", validate.StrengthLabel(score))
	}

	confirm, err := getPassword("Confirmar senha", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	terms, err := getSimpleText(a.reader, "Aceita os termos e condições? (s/n)", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.session.SignUp(ctx, name, email, string(password), string(confirm), terms == "s")
	if err != nil {
		return err
	}

	fmt.Printf("Conta criada com sucesso! Faça login como %s.\n", account.Email)
	return nil
}

// Login prompts for credentials and signs in through the session manager.
// On success the session subscription updates a.user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Senha", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.session.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Bem-vindo, %s!\n", account.Name)
	return nil
}

// Logout clears the persisted session. Safe to call when already signed out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("Sessão encerrada.")
	return nil
}

// Whoami prints the restored current user, if any.
func (a *App) Whoami(ctx context.Context) {
	user, err := a.session.CurrentUser(ctx)
	if err != nil {
		a.printError(err)
		return
	}
	if user == nil {
		fmt.Println("Ninguém está logado.")
		return
	}
	fmt.Printf("%s <%s> (desde %s)\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
}
