package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.user.Email)
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to Inspira CLI (type 'help' for commands)")
	if a.user != nil {
		fmt.Printf("Bem-vindo de volta, %s!\n", a.user.Name)
	}

	for {
		fmt.Printf("inspira %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: quotes [categoria], create, show <id>, fav <id>, favs, avatar <path>|clear, whoami, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, quotes [categoria], exit")
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				a.printError(err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				a.printError(err)
			}
		case "logout":
			if err := a.Logout(ctx); err != nil {
				a.printError(err)
			}
		case "whoami":
			a.Whoami(ctx)
		case "quotes":
			categoria := ""
			if len(args) > 0 {
				categoria = strings.Join(args, " ")
			}
			if err := a.listQuotes(ctx, categoria); err != nil {
				a.printError(err)
			}
		case "create":
			if err := a.createQuote(ctx); err != nil {
				a.printError(err)
			}
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <id>")
				continue
			}
			if err := a.showQuote(ctx, args[0]); err != nil {
				a.printError(err)
			}
		case "fav":
			if len(args) == 0 {
				fmt.Println("Usage: fav <id>")
				continue
			}
			if err := a.toggleFavorite(ctx, args[0]); err != nil {
				a.printError(err)
			}
		case "favs":
			if err := a.listFavorites(ctx); err != nil {
				a.printError(err)
			}
		case "avatar":
			if len(args) == 0 {
				fmt.Println("Usage: avatar <path> | avatar clear")
				continue
			}
			if err := a.avatar(ctx, args[0]); err != nil {
				a.printError(err)
			}
		case "exit", "quit":
			fmt.Println("Até logo!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
