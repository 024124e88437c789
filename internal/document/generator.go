// Package document turns one day of a saved workout into a standalone
// styled document. Data resolution (catalog lookup, media classification)
// is separated from rendering: a Renderer produces the final text from a
// fully resolved Document, so themes can be swapped without touching the
// resolution rules.
package document

import (
	"strings"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/media"
)

// UnknownExerciseName is rendered for exercise slots whose id no longer
// resolves against the catalog. The sets/reps of the slot still render.
const UnknownExerciseName = "Unknown Exercise"

// dayLabels maps the canonical day keys to their pt-BR display names.
var dayLabels = map[string]string{
	domain.Monday:    "Segunda-feira",
	domain.Tuesday:   "Terça-feira",
	domain.Wednesday: "Quarta-feira",
	domain.Thursday:  "Quinta-feira",
	domain.Friday:    "Sexta-feira",
	domain.Saturday:  "Sábado",
	domain.Sunday:    "Domingo",
}

// DayLabel returns the localized display name for a canonical day key.
// Unknown keys pass through unchanged.
func DayLabel(day string) string {
	if label, ok := dayLabels[strings.ToLower(day)]; ok {
		return label
	}
	return day
}

// ResolvedExercise is one exercise slot after catalog and media resolution.
type ResolvedExercise struct {
	Name        string
	Description string
	Sets        int
	Reps        int
	Media       domain.MediaReference
}

// Document is the fully resolved input to a Renderer.
type Document struct {
	WorkoutName string
	StudentName string
	DayKey      string
	DayLabel    string
	Profile     domain.Profile
	Exercises   []ResolvedExercise
}

// Renderer turns a resolved Document into its final textual form.
type Renderer interface {
	Render(doc Document) (string, error)
}

// Generator composes stores' data into documents via a Renderer.
type Generator struct {
	renderer Renderer
}

// NewGenerator creates a Generator. A nil renderer selects the default
// HTML theme.
func NewGenerator(renderer Renderer) *Generator {
	if renderer == nil {
		renderer = NewHTMLTheme()
	}
	return &Generator{renderer: renderer}
}

// Generate produces the document for one day of a workout. When the
// workout has no entry for the requested day (matched case-insensitively)
// the result is the empty string and a nil error; callers must treat empty
// output as "not found". Dangling exercise references and unparseable
// media degrade to fallbacks, never to an error.
func (g *Generator) Generate(workout *domain.Workout, day string, catalog []domain.Exercise, profile domain.Profile) (string, error) {
	workoutDay := workout.Day(day)
	if workoutDay == nil {
		return "", nil
	}

	doc := Document{
		WorkoutName: workout.Name,
		StudentName: workout.StudentName,
		DayKey:      workoutDay.Day,
		DayLabel:    DayLabel(workoutDay.Day),
		Profile:     profile,
		Exercises:   resolveExercises(workoutDay.Exercises, catalog),
	}
	return g.renderer.Render(doc)
}

func resolveExercises(slots []domain.WorkoutExercise, catalog []domain.Exercise) []ResolvedExercise {
	byID := make(map[string]domain.Exercise, len(catalog))
	for _, ex := range catalog {
		byID[ex.ID] = ex
	}

	resolved := make([]ResolvedExercise, 0, len(slots))
	for _, slot := range slots {
		re := ResolvedExercise{
			Name:  UnknownExerciseName,
			Sets:  slot.Sets,
			Reps:  slot.Reps,
			Media: domain.MediaReference{Kind: domain.MediaNone},
		}
		if ex, ok := byID[slot.ExerciseID]; ok {
			re.Name = ex.Name
			re.Description = ex.Description
			re.Media = media.FromExercise(ex)
		}
		resolved = append(resolved, re)
	}
	return resolved
}
