package export

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ShareLinker builds viewer links for single workout days and places them
// on the system clipboard.
type ShareLinker struct {
	baseURL string
	// copyFn is swappable for tests; defaults to the system clipboard.
	copyFn func(text string) error
}

// NewShareLinker creates a ShareLinker rooted at baseURL, e.g.
// "http://localhost:8080".
func NewShareLinker(baseURL string) *ShareLinker {
	return &ShareLinker{
		baseURL: strings.TrimRight(baseURL, "/"),
		copyFn:  clipboard.WriteAll,
	}
}

// Link returns the viewer URL for one day of a workout.
func (s *ShareLinker) Link(workoutID, day string) string {
	return fmt.Sprintf("%s/workouts/%s/%s", s.baseURL, workoutID, strings.ToLower(day))
}

// Share builds the viewer link and copies it to the clipboard. The link is
// returned either way so callers can offer it as a manual fallback when
// the clipboard is unavailable.
func (s *ShareLinker) Share(workoutID, day string) (string, error) {
	link := s.Link(workoutID, day)
	if err := s.copyFn(link); err != nil {
		return link, fmt.Errorf("copy share link to clipboard: %w", err)
	}
	return link, nil
}
