package domain

import (
	"strings"
	"time"
)

// Canonical day-of-week keys used throughout the app. They match the keys
// persisted inside saved workouts, always lower case.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// WeekDays lists the canonical day keys in week order.
var WeekDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsWeekDay reports whether day (case-insensitive) is one of the seven
// canonical day keys.
func IsWeekDay(day string) bool {
	day = strings.ToLower(day)
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// WorkoutExercise is one slot within a workout day: a reference to an
// exercise in the catalog plus the prescribed sets and reps. It has no
// identity of its own.
type WorkoutExercise struct {
	ExerciseID string `json:"exerciseId"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

// WorkoutDay holds the ordered exercises assigned to one weekday. A workout
// never contains two days with the same Day value.
type WorkoutDay struct {
	Day       string            `json:"day"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// Workout is a named training plan for one student spanning one or more
// days of the week. It owns its days and exercise slots by value; exercises
// themselves are only referenced by id.
type Workout struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	StudentName string       `json:"studentName"`
	Days        []WorkoutDay `json:"days"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Day returns the workout day matching the given key (case-insensitive),
// or nil when the workout has no entry for that day.
func (w *Workout) Day(day string) *WorkoutDay {
	for i := range w.Days {
		if strings.EqualFold(w.Days[i].Day, day) {
			return &w.Days[i]
		}
	}
	return nil
}
