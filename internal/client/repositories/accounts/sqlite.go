package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inspira/internal/client/models"
	"inspira/internal/common"
	"inspira/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, a *models.UserAccount) error {
	query := `INSERT INTO accounts (id, name, email, password_hash, created_at)
			values (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Email, a.PasswordHash, a.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: failed to insert account: %w", common.ErrStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.UserAccount, error) {
	query := `select id, name, email, password_hash, created_at from accounts where email=?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.UserAccount, error) {
	query := `select id, name, email, password_hash, created_at from accounts where id=?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `select count(*) from accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: failed to count accounts: %w", common.ErrStorage, err)
	}
	return n, nil
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.UserAccount, error) {
	a := &models.UserAccount{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return a, nil
}
