// Package file implements the store interfaces on top of durable JSON
// blobs, one file per store, mirroring the original app's per-key local
// storage layout.
package file

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// Blob file names under the data directory, one per store.
const (
	catalogFileName = "exercises_library.json"
	workoutFileName = "saved_workouts.json"
	profileFileName = "admin_profile.json"
)

// fileCatalogStore implements store.CatalogStore.
type fileCatalogStore struct {
	blob *blobFile
}

// NewCatalogStore creates a file-backed exercise catalog under dir. The
// blob is created empty if it does not exist. maxBytes caps the serialized
// blob size; zero means unlimited.
func NewCatalogStore(dir string, maxBytes int64) (store.CatalogStore, error) {
	blob := newBlobFile(filepath.Join(dir, catalogFileName), maxBytes)
	if err := blob.ensure([]domain.Exercise{}); err != nil {
		return nil, err
	}
	return &fileCatalogStore{blob: blob}, nil
}

func (s *fileCatalogStore) List() ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	if err := s.blob.load(&exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (s *fileCatalogStore) Save(exercise *domain.Exercise) error {
	exercises, err := s.List()
	if err != nil {
		return err
	}

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}

	replaced := false
	for i := range exercises {
		if exercises[i].ID == exercise.ID {
			exercises[i] = *exercise
			replaced = true
			break
		}
	}
	if !replaced {
		exercises = append(exercises, *exercise)
	}

	return s.blob.save(exercises)
}

func (s *fileCatalogStore) Delete(id string) error {
	exercises, err := s.List()
	if err != nil {
		return err
	}

	kept := exercises[:0]
	for _, ex := range exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	return s.blob.save(kept)
}
