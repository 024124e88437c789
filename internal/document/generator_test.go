package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

func testWorkout() *domain.Workout {
	return &domain.Workout{
		ID:          "w1",
		Name:        "Força",
		StudentName: "João",
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Days: []domain.WorkoutDay{
			{
				Day: domain.Monday,
				Exercises: []domain.WorkoutExercise{
					{ExerciseID: "e1", Sets: 3, Reps: 10},
				},
			},
		},
	}
}

func testCatalog() []domain.Exercise {
	return []domain.Exercise{
		{ID: "e1", Name: "Squat", Description: "Agachamento livre", VideoURL: "https://youtu.be/abc12345678"},
	}
}

func testProfile() domain.Profile {
	return domain.Profile{Name: "Ingrid Lemos", Contact: "ingrid@example.com", CREF: "123456-G/SP", Age: "30"}
}

func TestGenerateFullDocument(t *testing.T) {
	g := NewGenerator(nil)

	html, err := g.Generate(testWorkout(), "monday", testCatalog(), testProfile())
	require.NoError(t, err)
	require.NotEmpty(t, html)

	assert.Contains(t, html, "Força")
	assert.Contains(t, html, "João")
	assert.Contains(t, html, "Squat")
	assert.Contains(t, html, "3 sets")
	assert.Contains(t, html, "10 reps")
	assert.Contains(t, html, "https://www.youtube.com/embed/abc12345678")

	// Localized day label and profile footer.
	assert.Contains(t, html, "Segunda-feira")
	assert.Contains(t, html, "Ingrid Lemos")
	assert.Contains(t, html, "123456-G/SP")
}

func TestGenerateDayMatchedCaseInsensitively(t *testing.T) {
	g := NewGenerator(nil)

	html, err := g.Generate(testWorkout(), "MONDAY", testCatalog(), testProfile())
	require.NoError(t, err)
	assert.Contains(t, html, "Squat")
}

func TestGenerateMissingDayReturnsEmpty(t *testing.T) {
	g := NewGenerator(nil)

	html, err := g.Generate(testWorkout(), "tuesday", testCatalog(), testProfile())
	require.NoError(t, err)
	assert.Empty(t, html, "missing day must signal via empty output")
}

func TestGenerateDanglingExerciseReference(t *testing.T) {
	g := NewGenerator(nil)
	workout := testWorkout()
	workout.Days[0].Exercises = append(workout.Days[0].Exercises, domain.WorkoutExercise{
		ExerciseID: "gone", Sets: 4, Reps: 12,
	})

	html, err := g.Generate(workout, "monday", testCatalog(), testProfile())
	require.NoError(t, err)

	// The dangling slot renders the fallback name with its sets/reps.
	assert.Contains(t, html, UnknownExerciseName)
	assert.Contains(t, html, "4 sets x 12 reps")
	// The resolvable slot is untouched.
	assert.Contains(t, html, "Squat")
}

func TestGenerateOmitsBrokenMediaBlock(t *testing.T) {
	g := NewGenerator(nil)
	catalog := []domain.Exercise{
		{ID: "e1", Name: "Squat", VideoURL: "https://www.youtube.com/watch?v=bad"},
	}

	html, err := g.Generate(testWorkout(), "monday", catalog, testProfile())
	require.NoError(t, err)

	assert.Contains(t, html, "Squat")
	assert.NotContains(t, html, "<iframe", "no broken frame for an unparseable video id")
	assert.NotContains(t, html, "video-container")
}

func TestGenerateInlineVideoFile(t *testing.T) {
	g := NewGenerator(nil)
	catalog := []domain.Exercise{
		{ID: "e1", Name: "Squat", VideoFile: "data:video/mp4;base64,AAAA"},
	}

	html, err := g.Generate(testWorkout(), "monday", catalog, testProfile())
	require.NoError(t, err)

	assert.Contains(t, html, "<video controls")
	assert.Contains(t, html, "data:video/mp4;base64,AAAA")
	assert.NotContains(t, html, "<iframe")
}

func TestGenerateEmbedFrameHasFallbackLink(t *testing.T) {
	g := NewGenerator(nil)

	html, err := g.Generate(testWorkout(), "monday", testCatalog(), testProfile())
	require.NoError(t, err)

	// The original URL stays reachable next to the frame in case the
	// embed is blocked.
	assert.Contains(t, html, "<iframe")
	assert.Contains(t, html, `href="https://youtu.be/abc12345678"`)
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Segunda-feira", DayLabel("monday"))
	assert.Equal(t, "Sábado", DayLabel("Saturday"))
	// Unknown keys pass through unchanged.
	assert.Equal(t, "someday", DayLabel("someday"))
}
