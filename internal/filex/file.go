// Package filex contains small filesystem helpers used by the client.
package filex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureSubDir creates (if needed) and returns a subdirectory of the current
// working directory.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ImportFile copies the file at srcPath into the given subdirectory under a
// freshly generated name (the original extension is kept) and returns the
// destination path. Used to cache a picked profile image inside the app's
// own storage area.
func ImportFile(srcPath string, dirName string) (string, error) {
	dir, err := EnsureSubDir(dirName)
	if err != nil {
		return "", fmt.Errorf("error creating dir: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("error opening source file: %w", err)
	}
	defer src.Close()

	fn := uuid.NewString() + filepath.Ext(srcPath)
	dstPath := filepath.Join(dir, fn)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("error copying file: %w", err)
	}

	return dstPath, nil
}
