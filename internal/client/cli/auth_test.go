package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspira/internal/client/config"
	"inspira/internal/logging"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	chdir(t, t.TempDir())

	cfg := &config.Config{
		APIBaseURL:     "http://127.0.0.1:0",
		DatabasePath:   ":memory:",
		RequestTimeout: time.Second,
	}
	log := logging.NewTextLogger(io.Discard, slog.LevelError)

	app, err := NewApp(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.repos.Close() })
	return app
}

// stubInput replaces the interactive input seams for the duration of a test.
// Text answers are consumed in order; every password prompt yields password.
func stubInput(t *testing.T, answers []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPassword := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPassword
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatal("ran out of stubbed answers")
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestRegisterThenLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"Joana", "joana@example.com", "s"}, "abc123")
	require.NoError(t, app.Register(ctx))

	// registration does not sign in
	assert.False(t, app.isLoggedIn())

	stubInput(t, []string{"joana@example.com"}, "abc123")
	require.NoError(t, app.Login(ctx))

	require.True(t, app.isLoggedIn())
	assert.Equal(t, "joana@example.com", app.user.Email)
	assert.Equal(t, "(joana@example.com)", app.getStatus())
}

func TestRegister_ValidationFailureSurfaces(t *testing.T) {
	app := newTestApp(t)

	// terms not accepted
	stubInput(t, []string{"Joana", "joana@example.com", "n"}, "abc123")
	err := app.Register(context.Background())
	assert.Error(t, err)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_BadPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"Joana", "joana@example.com", "s"}, "abc123")
	require.NoError(t, app.Register(ctx))

	stubInput(t, []string{"joana@example.com"}, "wrongpass")
	err := app.Login(ctx)
	assert.Error(t, err)
	assert.False(t, app.isLoggedIn())
}

func TestLogout_ClearsSessionAndStatus(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stubInput(t, []string{"Joana", "joana@example.com", "s"}, "abc123")
	require.NoError(t, app.Register(ctx))
	stubInput(t, []string{"joana@example.com"}, "abc123")
	require.NoError(t, app.Login(ctx))

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "", app.getStatus())

	user, err := app.session.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// logging out again is not an error
	require.NoError(t, app.Logout(ctx))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
