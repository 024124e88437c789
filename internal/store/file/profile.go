package file

import (
	"path/filepath"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// fileProfileStore implements store.ProfileStore.
type fileProfileStore struct {
	blob *blobFile
}

// NewProfileStore creates a file-backed trainer profile store under dir.
// The blob starts out as an empty profile.
func NewProfileStore(dir string, maxBytes int64) (store.ProfileStore, error) {
	blob := newBlobFile(filepath.Join(dir, profileFileName), maxBytes)
	if err := blob.ensure(domain.Profile{}); err != nil {
		return nil, err
	}
	return &fileProfileStore{blob: blob}, nil
}

func (s *fileProfileStore) Get() (domain.Profile, error) {
	var profile domain.Profile
	if err := s.blob.load(&profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *fileProfileStore) Set(profile domain.Profile) error {
	return s.blob.save(profile)
}
