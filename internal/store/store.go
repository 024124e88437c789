package store

import "github.com/LeleooAlves/personal-plan-creator/internal/domain"

// Error constants for the store layer.
var (
	ErrNotFound      = StoreError("not found")
	ErrQuotaExceeded = StoreError("storage quota exceeded")
)

// StoreError helps distinguish store errors from everything else.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// CatalogStore persists the exercise library. List returns exercises in
// insertion order. Save assigns a fresh id when the exercise has none and
// otherwise replaces the record with the matching id in place. Delete is a
// no-op when the id is absent.
type CatalogStore interface {
	List() ([]domain.Exercise, error)
	Save(exercise *domain.Exercise) error
	Delete(id string) error
}

// WorkoutStore persists saved workouts. Save assigns id and CreatedAt on
// first save; both are immutable afterwards. Ordering of List is whatever
// the underlying blob holds — read sites sort as they need.
type WorkoutStore interface {
	List() ([]domain.Workout, error)
	Save(workout *domain.Workout) error
	Delete(id string) error
}

// ProfileStore persists the single trainer profile. There is no id: Set
// overwrites the whole record, Get returns the zero Profile before the
// first Set.
type ProfileStore interface {
	Get() (domain.Profile, error)
	Set(profile domain.Profile) error
}
