// Package export delivers generated workout documents: file downloads
// with deterministic names, a sequential multi-day export queue and a
// clipboard share link.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

var whitespace = regexp.MustCompile(`\s+`)

// Filename builds the deterministic download name for one workout day:
// workout name, student name and capitalized day joined by underscores,
// with any whitespace collapsed to underscores.
func Filename(workout *domain.Workout, day string) string {
	return fmt.Sprintf("%s_%s_%s.html",
		whitespace.ReplaceAllString(strings.TrimSpace(workout.Name), "_"),
		whitespace.ReplaceAllString(strings.TrimSpace(workout.StudentName), "_"),
		capitalize(strings.ToLower(day)),
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
