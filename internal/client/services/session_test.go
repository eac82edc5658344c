package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspira/internal/client/models"
	"inspira/internal/client/repositories/accounts"
	"inspira/internal/common"
	"inspira/internal/logging"
	"inspira/internal/validate"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE accounts (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newSessionManager(t *testing.T) (*SessionManager, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSessionManager(db, testLogger()), db
}

func TestSignUp_CreatesAccountWithUniqueIDs(t *testing.T) {
	s, db := newSessionManager(t)
	ctx := context.Background()

	a, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)
	b, err := s.SignUp(ctx, "Rui", "rui@example.com", "abc123", "abc123", true)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	n, err := accounts.NewSQLiteRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestSignUp_DoesNotEstablishSession(t *testing.T) {
	s, _ := newSessionManager(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)

	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignUp_PasswordMismatchPersistsNothing(t *testing.T) {
	s, db := newSessionManager(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc124", true)
	require.Error(t, err)

	var ferr *validate.FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, validate.PasswordMismatch, ferr.Variant)

	n, err := accounts.NewSQLiteRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSignIn_Success(t *testing.T) {
	s, _ := newSessionManager(t)
	ctx := context.Background()

	created, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)

	got, err := s.SignIn(ctx, "joana@example.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "joana@example.com", user.Email)
	// the session record never carries the password hash
	assert.Empty(t, user.PasswordHash)

	id, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Positive(t, id)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	s, _ := newSessionManager(t)

	_, err := s.SignIn(context.Background(), "nobody@example.com", "abc123")
	assert.ErrorIs(t, err, common.ErrAccountNotFound)
}

func TestSignIn_WrongPassword(t *testing.T) {
	s, _ := newSessionManager(t)
	ctx := context.Background()

	_, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)

	_, err = s.SignIn(ctx, "joana@example.com", "wrongpass")
	assert.ErrorIs(t, err, common.ErrBadCredentials)

	// failed sign-in does not create a session
	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignOut_AlwaysLeavesSignedOut(t *testing.T) {
	s, _ := newSessionManager(t)
	ctx := context.Background()

	// idempotent with no active session
	require.NoError(t, s.SignOut(ctx))

	_, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)
	_, err = s.SignIn(ctx, "joana@example.com", "abc123")
	require.NoError(t, err)

	require.NoError(t, s.SignOut(ctx))

	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// signing out twice is still fine
	require.NoError(t, s.SignOut(ctx))
}

func TestSubscribe_NotifiedOnSignInAndOut(t *testing.T) {
	s, _ := newSessionManager(t)
	ctx := context.Background()

	var events []*models.UserAccount
	s.Subscribe(func(u *models.UserAccount) { events = append(events, u) })

	_, err := s.SignUp(ctx, "Joana", "joana@example.com", "abc123", "abc123", true)
	require.NoError(t, err)
	// sign-up does not transition the session state machine
	assert.Empty(t, events)

	_, err = s.SignIn(ctx, "joana@example.com", "abc123")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.NotNil(t, events[0])

	require.NoError(t, s.SignOut(ctx))
	require.Len(t, events, 2)
	assert.Nil(t, events[1])
}

func TestUserID_AbsentByDefault(t *testing.T) {
	s, _ := newSessionManager(t)

	_, ok, err := s.UserID(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewAccountID_MonotonicInSameMillisecond(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := newAccountID(fixed)
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
