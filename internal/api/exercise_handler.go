package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/service"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// Uploaded clips are stored inline, so keep them small.
const maxVideoUploadBytes = 16 << 20

// ExerciseHandler holds the catalog service dependency.
type ExerciseHandler struct {
	catalogService service.CatalogService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(catalogService service.CatalogService) *ExerciseHandler {
	return &ExerciseHandler{catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// SaveExerciseRequest defines the expected JSON for creating or updating
// an exercise.
type SaveExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" binding:"omitempty,url"`
}

// ExerciseResponse is the DTO for returning exercise details. The inline
// video payload is not echoed back; HasVideoFile flags its presence.
type ExerciseResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	VideoURL     string `json:"videoUrl,omitempty"`
	HasVideoFile bool   `json:"hasVideoFile"`
	// VideoDropped is set when a save only succeeded after discarding the
	// embedded video to fit the storage quota.
	VideoDropped bool `json:"videoDropped,omitempty"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:           ex.ID,
		Name:         ex.Name,
		Description:  ex.Description,
		VideoURL:     ex.VideoURL,
		HasVideoFile: ex.VideoFile != "",
	}
}

// --- Handler Methods ---

// ListExercises returns the whole exercise library in insertion order.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.catalogService.ListExercises()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercises.")
		return
	}

	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	c.JSON(http.StatusOK, responses)
}

// CreateExercise adds a new exercise to the library.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req SaveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise := &domain.Exercise{
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	}
	dropped, err := h.catalogService.SaveExercise(exercise)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	resp := MapExerciseToResponse(exercise)
	resp.VideoDropped = dropped
	c.JSON(http.StatusCreated, resp)
}

// UpdateExercise updates name, description and video URL of an existing
// exercise. An embedded video file, if any, is kept.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req SaveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.catalogService.GetExercise(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load exercise.")
		return
	}

	exercise.Name = req.Name
	exercise.Description = req.Description
	exercise.VideoURL = req.VideoURL

	dropped, err := h.catalogService.SaveExercise(exercise)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	resp := MapExerciseToResponse(exercise)
	resp.VideoDropped = dropped
	c.JSON(http.StatusOK, resp)
}

// DeleteExercise removes an exercise; deleting an unknown id is a no-op.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	if err := h.catalogService.DeleteExercise(c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadVideo accepts a multipart video upload and stores it inline on the
// exercise as a data URI. The form interaction blocks until the conversion
// finishes or fails.
func (h *ExerciseHandler) UploadVideo(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "A 'video' form file is required.")
		return
	}
	if fileHeader.Size > maxVideoUploadBytes {
		abortWithError(c, http.StatusRequestEntityTooLarge, "Video file is too large.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded file.")
		return
	}

	exercise, err := h.catalogService.AttachVideoFile(c.Param("id"), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			h.writeSaveError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

func (h *ExerciseHandler) writeSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrQuotaExceeded):
		abortWithError(c, http.StatusInsufficientStorage, "Storage quota exceeded.")
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to save exercise.")
	}
}
