package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir(t *testing.T) {
	chdir(t, t.TempDir())

	dir, err := EnsureSubDir("avatars")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// second call is a no-op
	again, err := EnsureSubDir("avatars")
	require.NoError(t, err)
	assert.Equal(t, dir, again)
}

func TestImportFile_CopiesAndKeepsExtension(t *testing.T) {
	chdir(t, t.TempDir())

	src := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(src, []byte("imagedata"), 0o600))

	dst, err := ImportFile(src, "avatars")
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("imagedata"), data)
}

func TestImportFile_MissingSource(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := ImportFile("no-such-file.jpg", "avatars")
	assert.Error(t, err)
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
