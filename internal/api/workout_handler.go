package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/export"
	"github.com/LeleooAlves/personal-plan-creator/internal/service"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API ---

type WorkoutExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Sets       int    `json:"sets" binding:"required,gt=0"`
	Reps       int    `json:"reps" binding:"required,gt=0"`
}

type WorkoutDayRequest struct {
	Day       string                   `json:"day" binding:"required"`
	Exercises []WorkoutExerciseRequest `json:"exercises" binding:"required"`
}

// SaveWorkoutRequest defines the expected JSON for creating or updating a
// workout. Semantic validation (unique days, complete slots) happens in
// the service.
type SaveWorkoutRequest struct {
	Name        string              `json:"name" binding:"required"`
	StudentName string              `json:"studentName" binding:"required"`
	Days        []WorkoutDayRequest `json:"days" binding:"required"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	StudentName string              `json:"studentName"`
	Days        []domain.WorkoutDay `json:"days"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// DayExportResponse mirrors one export.DayResult with the error flattened
// to a message.
type DayExportResponse struct {
	Day   string `json:"day"`
	File  string `json:"file,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ExportResponse is the outcome of a multi-day export.
type ExportResponse struct {
	OutputDir string              `json:"outputDir"`
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Days      []DayExportResponse `json:"days"`
}

// ShareResponse reports the share link and whether it reached the
// clipboard. When Copied is false the link doubles as the manual fallback.
type ShareResponse struct {
	Link   string `json:"link"`
	Copied bool   `json:"copied"`
	Error  string `json:"error,omitempty"`
}

func mapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:          w.ID,
		Name:        w.Name,
		StudentName: w.StudentName,
		Days:        w.Days,
		CreatedAt:   w.CreatedAt,
	}
}

func (r SaveWorkoutRequest) toDomain() *domain.Workout {
	workout := &domain.Workout{
		Name:        r.Name,
		StudentName: r.StudentName,
		Days:        make([]domain.WorkoutDay, 0, len(r.Days)),
	}
	for _, day := range r.Days {
		slots := make([]domain.WorkoutExercise, 0, len(day.Exercises))
		for _, ex := range day.Exercises {
			slots = append(slots, domain.WorkoutExercise{
				ExerciseID: ex.ExerciseID,
				Sets:       ex.Sets,
				Reps:       ex.Reps,
			})
		}
		workout.Days = append(workout.Days, domain.WorkoutDay{Day: day.Day, Exercises: slots})
	}
	return workout
}

// --- Handler Methods ---

// ListWorkouts returns all workouts, most recently created first.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load workouts.")
		return
	}

	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = mapWorkoutToResponse(&workouts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// CreateWorkout validates and saves a new workout.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout := req.toDomain()
	if err := h.workoutService.SaveWorkout(workout); err != nil {
		h.writeWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapWorkoutToResponse(workout))
}

// UpdateWorkout replaces an existing workout's content. Id and creation
// timestamp stay as they were.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req SaveWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	existing, err := h.workoutService.GetWorkout(c.Param("id"))
	if err != nil {
		h.writeWorkoutError(c, err)
		return
	}

	workout := req.toDomain()
	workout.ID = existing.ID
	workout.CreatedAt = existing.CreatedAt
	if err := h.workoutService.SaveWorkout(workout); err != nil {
		h.writeWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapWorkoutToResponse(workout))
}

// DeleteWorkout removes a workout; deleting an unknown id is a no-op.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.DeleteWorkout(c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

// DownloadDay delivers the generated document for one day as a file
// attachment with its deterministic name.
func (h *WorkoutHandler) DownloadDay(c *gin.Context) {
	html, filename, err := h.workoutService.Document(c.Param("id"), c.Param("day"))
	if err != nil {
		h.writeWorkoutError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// ExportAll writes a document file for every day of the workout and
// reports per-day results. The export always runs to completion even when
// some days fail.
func (h *WorkoutHandler) ExportAll(c *gin.Context) {
	result, err := h.workoutService.ExportAll(c.Param("id"))
	if err != nil {
		h.writeWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapExportResult(result))
}

// ShareDay puts a viewer link for the day on the system clipboard.
func (h *WorkoutHandler) ShareDay(c *gin.Context) {
	link, err := h.workoutService.ShareDay(c.Param("id"), c.Param("day"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) || errors.Is(err, service.ErrDayNotFound) {
			h.writeWorkoutError(c, err)
			return
		}
		// Clipboard failure: report it but hand the link back as a
		// manual fallback.
		c.JSON(http.StatusOK, ShareResponse{Link: link, Copied: false, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ShareResponse{Link: link, Copied: true})
}

// ViewDay serves the generated document inline. This is the route shared
// links point at, so it is reachable without a session.
func (h *WorkoutHandler) ViewDay(c *gin.Context) {
	html, _, err := h.workoutService.Document(c.Param("id"), c.Param("day"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) || errors.Is(err, service.ErrDayNotFound) {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<p>Treino não encontrado.</p>"))
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate workout document.")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func mapExportResult(result *export.Result) ExportResponse {
	resp := ExportResponse{
		OutputDir: result.OutputDir,
		Total:     result.Total,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Days:      make([]DayExportResponse, 0, len(result.Days)),
	}
	for _, day := range result.Days {
		d := DayExportResponse{Day: day.Day, File: day.File, OK: day.Err == nil}
		if day.Err != nil {
			d.Error = day.Err.Error()
		}
		resp.Days = append(resp.Days, d)
	}
	return resp
}

func (h *WorkoutHandler) writeWorkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found.")
	case errors.Is(err, service.ErrDayNotFound):
		abortWithError(c, http.StatusNotFound, "Day not found in workout.")
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Workout operation failed.")
	}
}
