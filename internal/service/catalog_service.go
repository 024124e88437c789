package service

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidation       = errors.New("validation failed")
)

// CatalogService manages the trainer's exercise library.
type CatalogService interface {
	ListExercises() ([]domain.Exercise, error)
	GetExercise(id string) (*domain.Exercise, error)
	// SaveExercise validates and persists an exercise. When the write hits
	// the storage quota, the embedded video payload is dropped and the
	// write retried once; videoDropped reports that this happened.
	SaveExercise(exercise *domain.Exercise) (videoDropped bool, err error)
	DeleteExercise(id string) error
	// AttachVideoFile converts an uploaded clip into an inline data URI on
	// the exercise and persists it. A quota failure here surfaces as-is:
	// the payload being attached cannot be the payload that gets dropped.
	AttachVideoFile(id string, data []byte, contentType string) (*domain.Exercise, error)
}

type catalogService struct {
	catalog store.CatalogStore
}

// NewCatalogService creates a new CatalogService on top of a catalog store.
func NewCatalogService(catalog store.CatalogStore) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) ListExercises() ([]domain.Exercise, error) {
	return s.catalog.List()
}

func (s *catalogService) GetExercise(id string) (*domain.Exercise, error) {
	exercises, err := s.catalog.List()
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == id {
			return &exercises[i], nil
		}
	}
	return nil, ErrExerciseNotFound
}

func (s *catalogService) SaveExercise(exercise *domain.Exercise) (bool, error) {
	if exercise.Name == "" {
		return false, fmt.Errorf("%w: exercise name is required", ErrValidation)
	}

	err := s.catalog.Save(exercise)
	if errors.Is(err, store.ErrQuotaExceeded) && exercise.VideoFile != "" {
		// Keep the save instead of losing it: retry once without the
		// heaviest optional payload.
		exercise.VideoFile = ""
		if retryErr := s.catalog.Save(exercise); retryErr != nil {
			return false, retryErr
		}
		return true, nil
	}
	return false, err
}

func (s *catalogService) DeleteExercise(id string) error {
	return s.catalog.Delete(id)
}

func (s *catalogService) AttachVideoFile(id string, data []byte, contentType string) (*domain.Exercise, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: video file is empty", ErrValidation)
	}
	if contentType == "" {
		contentType = "video/mp4"
	}

	exercise, err := s.GetExercise(id)
	if err != nil {
		return nil, err
	}

	exercise.VideoFile = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	if err := s.catalog.Save(exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}
