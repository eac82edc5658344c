// Package services contains the application services of the Inspira client.
// This file defines the session manager: sign-up, sign-in/out, current-user
// restore, and change notification for screens that re-render on auth state.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inspira/internal/client/models"
	"inspira/internal/client/repositories/accounts"
	"inspira/internal/client/repositories/kv"
	"inspira/internal/common"
	"inspira/internal/dbx"
	"inspira/internal/logging"
	"inspira/internal/validate"
)

// DefaultUserID is the documented fallback applied by callers when no
// usuarioId has been persisted for this installation.
const DefaultUserID int64 = 1

// SessionManager owns the authenticated-user lifecycle. At most one session
// exists per installation: the presence of the persisted session record means
// "signed in", its absence means "signed out".
type SessionManager struct {
	db  *sql.DB
	log logging.Logger

	mu   sync.Mutex
	subs []func(*models.UserAccount)
}

// NewSessionManager constructs a SessionManager over the client database.
func NewSessionManager(db *sql.DB, log logging.Logger) *SessionManager {
	return &SessionManager{db: db, log: log}
}

func (s *SessionManager) accountsRepo() accounts.Repository {
	return accounts.NewSQLiteRepository(s.db)
}

func (s *SessionManager) kvRepo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// account id generation: time-derived, with a process-local monotonic bump so
// two registrations inside the same millisecond still get distinct ids.
var (
	idMu   sync.Mutex
	lastID int64
)

func newAccountID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

// SignUp validates all fields, failing fast on the first violation with a
// *validate.FieldError, then persists a new account. It does NOT establish a
// session; the caller signs in separately.
func (s *SessionManager) SignUp(ctx context.Context, name, email, password, confirmPassword string, acceptTerms bool) (*models.UserAccount, error) {
	if ferr := validate.SignUp(name, email, password, confirmPassword, acceptTerms); ferr != nil {
		return nil, ferr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserAccount{
		ID:           newAccountID(time.Now()),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.accountsRepo().Create(ctx, account); err != nil {
		return nil, fmt.Errorf("saving error: %w", err)
	}

	s.log.Info(ctx, "account created", "id", account.ID, "email", account.Email)
	return account, nil
}

// SignIn looks up the account by email and verifies the password. On success
// it persists the session record (and the numeric usuarioId) in a single
// transaction, notifies subscribers, and returns the account.
//
// Errors: common.ErrAccountNotFound when no account matches the email,
// common.ErrBadCredentials when the password does not match.
func (s *SessionManager) SignIn(ctx context.Context, email, password string) (*models.UserAccount, error) {
	account, err := s.accountsRepo().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("account lookup error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, common.ErrBadCredentials
		}
		return nil, fmt.Errorf("password check error: %w", err)
	}

	record, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session record: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, kv.KeySession, string(record)); err != nil {
			return err
		}
		return repo.Set(ctx, kv.KeyUserID, account.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.log.Info(ctx, "signed in", "id", account.ID)
	s.notify(account)
	return account, nil
}

// SignOut clears the persisted session record. Calling it with no active
// session is not an error.
func (s *SessionManager) SignOut(ctx context.Context) error {
	if err := s.kvRepo().Remove(ctx, kv.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.log.Info(ctx, "signed out")
	s.notify(nil)
	return nil
}

// CurrentUser reads the persisted session record and returns the decoded
// account, or (nil, nil) when signed out.
func (s *SessionManager) CurrentUser(ctx context.Context) (*models.UserAccount, error) {
	record, ok, err := s.kvRepo().Get(ctx, kv.KeySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	account := &models.UserAccount{}
	if err := json.Unmarshal([]byte(record), account); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}
	return account, nil
}

// UserID returns the persisted numeric usuarioId, or ok=false when absent.
// Callers apply DefaultUserID explicitly where the fallback policy applies.
func (s *SessionManager) UserID(ctx context.Context) (int64, bool, error) {
	raw, ok, err := s.kvRepo().Get(ctx, kv.KeyUserID)
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.log.Warn(ctx, "non-numeric usuarioId in local store", "value", raw)
		return 0, false, nil
	}
	return id, true, nil
}

// Subscribe registers fn to be called after every sign-in (with the account)
// and sign-out (with nil). Callbacks run on the calling goroutine.
func (s *SessionManager) Subscribe(fn func(*models.UserAccount)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *SessionManager) notify(account *models.UserAccount) {
	s.mu.Lock()
	subs := make([]func(*models.UserAccount), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(account)
	}
}
