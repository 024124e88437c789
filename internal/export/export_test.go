package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeleooAlves/personal-plan-creator/internal/document"
	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

func exportWorkout() *domain.Workout {
	return &domain.Workout{
		ID:          "w1",
		Name:        "Plano de Força",
		StudentName: "Maria Silva",
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Days: []domain.WorkoutDay{
			{Day: domain.Monday, Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Sets: 3, Reps: 10}}},
			{Day: domain.Thursday, Exercises: []domain.WorkoutExercise{{ExerciseID: "e1", Sets: 4, Reps: 8}}},
		},
	}
}

func TestFilename(t *testing.T) {
	w := exportWorkout()
	assert.Equal(t, "Plano_de_Força_Maria_Silva_Monday.html", Filename(w, "monday"))
	// Day casing is normalized.
	assert.Equal(t, "Plano_de_Força_Maria_Silva_Thursday.html", Filename(w, "THURSDAY"))
}

func TestExportAllWritesEveryDay(t *testing.T) {
	dir := t.TempDir()
	exporter := NewDayExporter(document.NewGenerator(nil), dir)

	catalog := []domain.Exercise{{ID: "e1", Name: "Squat"}}
	result, err := exporter.ExportAll(exportWorkout(), catalog, domain.Profile{Name: "Ingrid"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Days, 2)

	// Per-day order matches the workout's day order.
	assert.Equal(t, domain.Monday, result.Days[0].Day)
	assert.Equal(t, domain.Thursday, result.Days[1].Day)

	for _, day := range result.Days {
		require.NoError(t, day.Err)
		data, err := os.ReadFile(day.File)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Maria Silva")
	}
}

func TestExportAllCapturesPerDayFailure(t *testing.T) {
	dir := t.TempDir()
	exporter := NewDayExporter(document.NewGenerator(nil), dir)

	// Force a write failure on the first day by occupying its target
	// filename with a directory.
	w := exportWorkout()
	blocked := filepath.Join(dir, Filename(w, domain.Monday))
	require.NoError(t, os.MkdirAll(blocked, 0o755))

	catalog := []domain.Exercise{{ID: "e1", Name: "Squat"}}
	result, err := exporter.ExportAll(w, catalog, domain.Profile{})
	require.NoError(t, err, "the overall export always completes")

	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Days, 2)
	assert.Error(t, result.Days[0].Err)
	assert.NoError(t, result.Days[1].Err)
}

func TestShareLinker(t *testing.T) {
	t.Run("link shape", func(t *testing.T) {
		s := NewShareLinker("http://localhost:8080/")
		assert.Equal(t, "http://localhost:8080/workouts/w1/monday", s.Link("w1", "Monday"))
	})

	t.Run("copies to clipboard", func(t *testing.T) {
		var copied string
		s := NewShareLinker("http://localhost:8080")
		s.copyFn = func(text string) error {
			copied = text
			return nil
		}

		link, err := s.Share("w1", "monday")
		require.NoError(t, err)
		assert.Equal(t, link, copied)
	})

	t.Run("clipboard failure still returns the link", func(t *testing.T) {
		s := NewShareLinker("http://localhost:8080")
		s.copyFn = func(string) error { return errors.New("no clipboard") }

		link, err := s.Share("w1", "monday")
		assert.Error(t, err)
		assert.Equal(t, "http://localhost:8080/workouts/w1/monday", link)
	})
}
