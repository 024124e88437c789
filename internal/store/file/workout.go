package file

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// fileWorkoutStore implements store.WorkoutStore.
type fileWorkoutStore struct {
	blob *blobFile
	now  func() time.Time
}

// NewWorkoutStore creates a file-backed workout store under dir.
func NewWorkoutStore(dir string, maxBytes int64) (store.WorkoutStore, error) {
	blob := newBlobFile(filepath.Join(dir, workoutFileName), maxBytes)
	if err := blob.ensure([]domain.Workout{}); err != nil {
		return nil, err
	}
	return &fileWorkoutStore{blob: blob, now: time.Now}, nil
}

func (s *fileWorkoutStore) List() ([]domain.Workout, error) {
	var workouts []domain.Workout
	if err := s.blob.load(&workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *fileWorkoutStore) Save(workout *domain.Workout) error {
	workouts, err := s.List()
	if err != nil {
		return err
	}

	// Id and creation timestamp are assigned exactly once, at first save.
	if workout.ID == "" {
		workout.ID = uuid.NewString()
		workout.CreatedAt = s.now().UTC()
	}

	replaced := false
	for i := range workouts {
		if workouts[i].ID == workout.ID {
			// Upsert keeps the original creation timestamp.
			workout.CreatedAt = workouts[i].CreatedAt
			workouts[i] = *workout
			replaced = true
			break
		}
	}
	if !replaced {
		workouts = append(workouts, *workout)
	}

	return s.blob.save(workouts)
}

func (s *fileWorkoutStore) Delete(id string) error {
	workouts, err := s.List()
	if err != nil {
		return err
	}

	kept := workouts[:0]
	for _, w := range workouts {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return s.blob.save(kept)
}
