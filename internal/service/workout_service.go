package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/LeleooAlves/personal-plan-creator/internal/document"
	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/export"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrDayNotFound     = errors.New("day not found in workout")
)

// WorkoutService manages saved workouts and every way of getting a
// generated document out of them.
type WorkoutService interface {
	// ListWorkouts returns all workouts, most recently created first.
	ListWorkouts() ([]domain.Workout, error)
	GetWorkout(id string) (*domain.Workout, error)
	SaveWorkout(workout *domain.Workout) error
	DeleteWorkout(id string) error

	// Document generates the styled document for one day of a workout
	// together with its deterministic download filename.
	Document(workoutID, day string) (html string, filename string, err error)
	// ExportAll writes one document file per day of the workout,
	// capturing per-day success or failure.
	ExportAll(workoutID string) (*export.Result, error)
	// ShareDay copies a viewer link for the day onto the clipboard and
	// returns it. The link comes back even when the clipboard fails, as a
	// manual fallback.
	ShareDay(workoutID, day string) (link string, err error)
}

type workoutService struct {
	workouts  store.WorkoutStore
	catalog   store.CatalogStore
	profile   store.ProfileStore
	generator *document.Generator
	exporter  *export.DayExporter
	sharer    *export.ShareLinker
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(
	workouts store.WorkoutStore,
	catalog store.CatalogStore,
	profile store.ProfileStore,
	generator *document.Generator,
	exporter *export.DayExporter,
	sharer *export.ShareLinker,
) WorkoutService {
	return &workoutService{
		workouts:  workouts,
		catalog:   catalog,
		profile:   profile,
		generator: generator,
		exporter:  exporter,
		sharer:    sharer,
	}
}

func (s *workoutService) ListWorkouts() ([]domain.Workout, error) {
	workouts, err := s.workouts.List()
	if err != nil {
		return nil, err
	}
	// The store keeps insertion order; the read site wants newest first.
	sort.SliceStable(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt.After(workouts[j].CreatedAt)
	})
	return workouts, nil
}

func (s *workoutService) GetWorkout(id string) (*domain.Workout, error) {
	workouts, err := s.workouts.List()
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	return nil, ErrWorkoutNotFound
}

func (s *workoutService) SaveWorkout(workout *domain.Workout) error {
	if err := validateWorkout(workout); err != nil {
		return err
	}
	return s.workouts.Save(workout)
}

func (s *workoutService) DeleteWorkout(id string) error {
	return s.workouts.Delete(id)
}

func (s *workoutService) Document(workoutID, day string) (string, string, error) {
	workout, err := s.GetWorkout(workoutID)
	if err != nil {
		return "", "", err
	}
	catalog, err := s.catalog.List()
	if err != nil {
		return "", "", err
	}
	profile, err := s.profile.Get()
	if err != nil {
		return "", "", err
	}

	html, err := s.generator.Generate(workout, day, catalog, profile)
	if err != nil {
		return "", "", err
	}
	if html == "" {
		return "", "", ErrDayNotFound
	}
	return html, export.Filename(workout, day), nil
}

func (s *workoutService) ExportAll(workoutID string) (*export.Result, error) {
	workout, err := s.GetWorkout(workoutID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.List()
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.Get()
	if err != nil {
		return nil, err
	}
	return s.exporter.ExportAll(workout, catalog, profile)
}

func (s *workoutService) ShareDay(workoutID, day string) (string, error) {
	workout, err := s.GetWorkout(workoutID)
	if err != nil {
		return "", err
	}
	if workout.Day(day) == nil {
		return "", ErrDayNotFound
	}
	return s.sharer.Share(workout.ID, day)
}

// validateWorkout enforces the creation-time invariants: a student name, at
// least one day, no duplicate days, and at least one fully specified
// exercise slot per day. Storage itself never checks these.
func validateWorkout(workout *domain.Workout) error {
	if strings.TrimSpace(workout.StudentName) == "" {
		return fmt.Errorf("%w: student name is required", ErrValidation)
	}
	if len(workout.Days) == 0 {
		return fmt.Errorf("%w: select at least one day of the week", ErrValidation)
	}

	seen := make(map[string]bool, len(workout.Days))
	for _, day := range workout.Days {
		key := strings.ToLower(day.Day)
		if !domain.IsWeekDay(key) {
			return fmt.Errorf("%w: unknown day %q", ErrValidation, day.Day)
		}
		if seen[key] {
			return fmt.Errorf("%w: day %q appears more than once", ErrValidation, day.Day)
		}
		seen[key] = true

		if len(day.Exercises) == 0 {
			return fmt.Errorf("%w: day %q has no exercises", ErrValidation, day.Day)
		}
		for _, slot := range day.Exercises {
			if slot.ExerciseID == "" {
				return fmt.Errorf("%w: day %q has an incomplete exercise slot", ErrValidation, day.Day)
			}
			if slot.Sets <= 0 || slot.Reps <= 0 {
				return fmt.Errorf("%w: sets and reps must be positive", ErrValidation)
			}
		}
	}
	return nil
}
