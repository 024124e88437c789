// Package memory implements the store interfaces entirely in memory. It
// backs tests and makes the stores injectable without touching disk.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// CatalogStore is an in-memory store.CatalogStore.
type CatalogStore struct {
	mu        sync.Mutex
	exercises []domain.Exercise

	// MaxBytes caps the number of bytes of embedded video data across the
	// catalog, imitating the file store's quota. Zero means unlimited.
	MaxBytes int64
}

// NewCatalogStore creates an empty in-memory catalog.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

func (s *CatalogStore) List() ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Exercise, len(s.exercises))
	copy(out, s.exercises)
	return out, nil
}

func (s *CatalogStore) Save(exercise *domain.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	if s.MaxBytes > 0 && s.payloadSize()+int64(len(exercise.VideoFile)) > s.MaxBytes {
		return store.ErrQuotaExceeded
	}

	for i := range s.exercises {
		if s.exercises[i].ID == exercise.ID {
			s.exercises[i] = *exercise
			return nil
		}
	}
	s.exercises = append(s.exercises, *exercise)
	return nil
}

func (s *CatalogStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.exercises[:0]
	for _, ex := range s.exercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	s.exercises = kept
	return nil
}

func (s *CatalogStore) payloadSize() int64 {
	var n int64
	for _, ex := range s.exercises {
		n += int64(len(ex.VideoFile))
	}
	return n
}

// WorkoutStore is an in-memory store.WorkoutStore.
type WorkoutStore struct {
	mu       sync.Mutex
	workouts []domain.Workout

	// Now is the clock used for CreatedAt stamps; tests may pin it.
	Now func() time.Time
}

// NewWorkoutStore creates an empty in-memory workout store.
func NewWorkoutStore() *WorkoutStore {
	return &WorkoutStore{Now: time.Now}
}

func (s *WorkoutStore) List() ([]domain.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out, nil
}

func (s *WorkoutStore) Save(workout *domain.Workout) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if workout.ID == "" {
		workout.ID = uuid.NewString()
		workout.CreatedAt = s.Now().UTC()
	}

	for i := range s.workouts {
		if s.workouts[i].ID == workout.ID {
			workout.CreatedAt = s.workouts[i].CreatedAt
			s.workouts[i] = *workout
			return nil
		}
	}
	s.workouts = append(s.workouts, *workout)
	return nil
}

func (s *WorkoutStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.workouts[:0]
	for _, w := range s.workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.workouts = kept
	return nil
}

// ProfileStore is an in-memory store.ProfileStore.
type ProfileStore struct {
	mu      sync.Mutex
	profile domain.Profile
}

// NewProfileStore creates an in-memory profile store holding the empty
// profile.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

func (s *ProfileStore) Get() (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile, nil
}

func (s *ProfileStore) Set(profile domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
	return nil
}
