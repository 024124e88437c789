package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/service"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest defines the JSON for overwriting the trainer profile.
// Every field may be empty; the profile starts out blank.
type SaveProfileRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	CREF    string `json:"cref"`
	Age     string `json:"age"`
}

// GetProfile returns the trainer profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile overwrites the trainer profile wholesale.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile := domain.Profile{
		Name:    req.Name,
		Contact: req.Contact,
		CREF:    req.CREF,
		Age:     req.Age,
	}
	if err := h.profileService.SaveProfile(profile); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}
