package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeleooAlves/personal-plan-creator/internal/document"
	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/export"
	"github.com/LeleooAlves/personal-plan-creator/internal/store/memory"
)

func newTestWorkoutService(t *testing.T) (WorkoutService, *memory.CatalogStore, *memory.WorkoutStore, *memory.ProfileStore) {
	t.Helper()
	catalog := memory.NewCatalogStore()
	workouts := memory.NewWorkoutStore()
	profiles := memory.NewProfileStore()

	generator := document.NewGenerator(nil)
	exporter := export.NewDayExporter(generator, t.TempDir())
	sharer := export.NewShareLinker("http://localhost:8080")

	svc := NewWorkoutService(workouts, catalog, profiles, generator, exporter, sharer)
	return svc, catalog, workouts, profiles
}

func validWorkout() *domain.Workout {
	return &domain.Workout{
		Name:        "Força",
		StudentName: "João",
		Days: []domain.WorkoutDay{
			{Day: "monday", Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Sets: 3, Reps: 10}}},
		},
	}
}

func TestSaveWorkoutValidation(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)

	cases := map[string]func(*domain.Workout){
		"empty student name": func(w *domain.Workout) { w.StudentName = "  " },
		"no days":            func(w *domain.Workout) { w.Days = nil },
		"unknown day":        func(w *domain.Workout) { w.Days[0].Day = "restday" },
		"duplicate day": func(w *domain.Workout) {
			w.Days = append(w.Days, domain.WorkoutDay{Day: "Monday", Exercises: w.Days[0].Exercises})
		},
		"day without exercises": func(w *domain.Workout) { w.Days[0].Exercises = nil },
		"incomplete slot": func(w *domain.Workout) {
			w.Days[0].Exercises[0].ExerciseID = ""
		},
		"non-positive sets": func(w *domain.Workout) { w.Days[0].Exercises[0].Sets = 0 },
		"non-positive reps": func(w *domain.Workout) { w.Days[0].Exercises[0].Reps = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			w := validWorkout()
			mutate(w)
			assert.ErrorIs(t, svc.SaveWorkout(w), ErrValidation)
		})
	}
}

func TestSaveWorkoutNoPartialSaveOnValidationError(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)

	w := validWorkout()
	w.StudentName = ""
	require.Error(t, svc.SaveWorkout(w))

	saved, err := svc.ListWorkouts()
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	svc, _, workouts, _ := newTestWorkoutService(t)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := base
	workouts.Now = func() time.Time {
		clock = clock.Add(time.Hour)
		return clock
	}

	first := validWorkout()
	first.Name = "Primeiro"
	require.NoError(t, svc.SaveWorkout(first))

	second := validWorkout()
	second.Name = "Segundo"
	require.NoError(t, svc.SaveWorkout(second))

	list, err := svc.ListWorkouts()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Segundo", list[0].Name)
	assert.Equal(t, "Primeiro", list[1].Name)
}

func TestDocument(t *testing.T) {
	svc, catalog, _, profiles := newTestWorkoutService(t)

	require.NoError(t, catalog.Save(&domain.Exercise{ID: "e1", Name: "Squat"}))
	require.NoError(t, profiles.Set(domain.Profile{Name: "Ingrid Lemos"}))

	w := validWorkout()
	require.NoError(t, svc.SaveWorkout(w))

	t.Run("found day", func(t *testing.T) {
		html, filename, err := svc.Document(w.ID, "monday")
		require.NoError(t, err)
		assert.Contains(t, html, "Squat")
		assert.Equal(t, "Força_João_Monday.html", filename)
	})

	t.Run("missing day", func(t *testing.T) {
		_, _, err := svc.Document(w.ID, "sunday")
		assert.ErrorIs(t, err, ErrDayNotFound)
	})

	t.Run("missing workout", func(t *testing.T) {
		_, _, err := svc.Document("missing", "monday")
		assert.ErrorIs(t, err, ErrWorkoutNotFound)
	})
}

func TestExportAll(t *testing.T) {
	svc, catalog, _, _ := newTestWorkoutService(t)
	require.NoError(t, catalog.Save(&domain.Exercise{ID: "e1", Name: "Squat"}))

	w := validWorkout()
	w.Days = append(w.Days, domain.WorkoutDay{
		Day:       "friday",
		Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Sets: 5, Reps: 5}},
	})
	require.NoError(t, svc.SaveWorkout(w))

	result, err := svc.ExportAll(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Succeeded)

	_, err = svc.ExportAll("missing")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestShareDayValidatesTarget(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)

	w := validWorkout()
	require.NoError(t, svc.SaveWorkout(w))

	_, err := svc.ShareDay(w.ID, "sunday")
	assert.ErrorIs(t, err, ErrDayNotFound)

	_, err = svc.ShareDay("missing", "monday")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}
