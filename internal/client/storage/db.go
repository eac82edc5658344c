// Package storage opens the local client database and wires the repository
// set over it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"inspira/internal/client/migrations"
	"inspira/internal/client/repositories/accounts"
	"inspira/internal/client/repositories/kv"
)

// Repositories bundles the repositories backed by one database handle.
type Repositories struct {
	Accounts accounts.Repository
	KV       kv.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, migrates it,
// and returns the repository set.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// one connection: SQLite serializes writers anyway, and a :memory: dsn
	// would otherwise give every pooled connection its own empty database
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Accounts: accounts.NewSQLiteRepository(db),
		KV:       kv.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
