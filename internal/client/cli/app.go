// Package cli implements the interactive Inspira client: a REPL over the
// session manager, the favorites registry, and the remote quote gateway.
package cli

import (
	"bufio"
	"context"
	"os"

	"inspira/internal/client/config"
	"inspira/internal/client/gateway"
	"inspira/internal/client/models"
	"inspira/internal/client/services"
	"inspira/internal/client/storage"
	"inspira/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	repos     *storage.Repositories
	session   *services.SessionManager
	favorites *services.FavoritesRegistry
	profile   *services.ProfileService
	quotes    gateway.Client
	log       logging.Logger
	reader    *bufio.Reader

	// user mirrors the persisted session via the session subscription.
	user *models.UserAccount
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config:    c,
		repos:     repos,
		session:   services.NewSessionManager(repos.DB, log),
		favorites: services.NewFavoritesRegistry(repos.KV, log),
		profile:   services.NewProfileService(repos.KV, log),
		quotes:    gateway.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}

	a.session.Subscribe(func(u *models.UserAccount) { a.user = u })

	// restore a persisted session from a previous run
	if u, err := a.session.CurrentUser(ctx); err == nil {
		a.user = u
	} else {
		log.Warn(ctx, "could not restore session", "error", err)
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
