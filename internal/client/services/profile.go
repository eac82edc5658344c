package services

import (
	"context"
	"fmt"

	"inspira/internal/client/repositories/kv"
	"inspira/internal/filex"
	"inspira/internal/logging"
)

const avatarDir = "avatars"

// ProfileService manages the locally cached profile image reference.
type ProfileService struct {
	kv  kv.Repository
	log logging.Logger
}

// NewProfileService constructs a ProfileService over the local store.
func NewProfileService(repo kv.Repository, log logging.Logger) *ProfileService {
	return &ProfileService{kv: repo, log: log}
}

// SetImage copies the image at srcPath into the app's cache area and persists
// the cached path under the profileImage key. Returns the cached path.
func (s *ProfileService) SetImage(ctx context.Context, srcPath string) (string, error) {
	cached, err := filex.ImportFile(srcPath, avatarDir)
	if err != nil {
		return "", fmt.Errorf("failed to cache profile image: %w", err)
	}
	if err := s.kv.Set(ctx, kv.KeyProfileImage, cached); err != nil {
		return "", err
	}
	s.log.Info(ctx, "profile image updated", "path", cached)
	return cached, nil
}

// Image returns the cached profile image path, or ok=false when none is set.
func (s *ProfileService) Image(ctx context.Context) (string, bool, error) {
	return s.kv.Get(ctx, kv.KeyProfileImage)
}

// ClearImage removes the persisted profile image reference. Idempotent.
func (s *ProfileService) ClearImage(ctx context.Context) error {
	return s.kv.Remove(ctx, kv.KeyProfileImage)
}
