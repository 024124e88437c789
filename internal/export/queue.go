package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/LeleooAlves/personal-plan-creator/internal/document"
	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
)

// DayResult is the outcome of exporting one workout day.
type DayResult struct {
	Day  string `json:"day"`
	File string `json:"file,omitempty"`
	Err  error  `json:"-"`
}

// Result summarizes a multi-day export. Every day of the workout appears
// in Days exactly once, whether it succeeded or not.
type Result struct {
	OutputDir string      `json:"outputDir"`
	Total     int         `json:"total"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Days      []DayResult `json:"days"`
}

// DayExporter writes one document file per workout day into an output
// directory. Days are exported strictly one at a time; a failure on one
// day is captured in its result and never aborts the rest.
type DayExporter struct {
	generator *document.Generator
	outputDir string
}

// NewDayExporter creates an exporter writing into outputDir.
func NewDayExporter(generator *document.Generator, outputDir string) *DayExporter {
	return &DayExporter{generator: generator, outputDir: outputDir}
}

// ExportAll generates and writes a document for every day of the workout.
// The returned error is non-nil only when the output directory itself
// cannot be created; per-day failures live in the individual results.
func (e *DayExporter) ExportAll(workout *domain.Workout, catalog []domain.Exercise, profile domain.Profile) (*Result, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	result := &Result{
		OutputDir: e.outputDir,
		Total:     len(workout.Days),
		Days:      make([]DayResult, 0, len(workout.Days)),
	}

	for _, day := range workout.Days {
		res := e.exportDay(workout, day.Day, catalog, profile)
		if res.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Days = append(result.Days, res)
	}
	return result, nil
}

func (e *DayExporter) exportDay(workout *domain.Workout, day string, catalog []domain.Exercise, profile domain.Profile) DayResult {
	res := DayResult{Day: day}

	html, err := e.generator.Generate(workout, day, catalog, profile)
	if err != nil {
		res.Err = fmt.Errorf("generate %s: %w", day, err)
		return res
	}
	if html == "" {
		res.Err = fmt.Errorf("day %s not found in workout", day)
		return res
	}

	path := filepath.Join(e.outputDir, Filename(workout, day))
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", path, err)
		return res
	}
	res.File = path
	return res
}
