package service

import (
	"github.com/LeleooAlves/personal-plan-creator/internal/domain"
	"github.com/LeleooAlves/personal-plan-creator/internal/store"
)

// ProfileService reads and overwrites the trainer's singleton profile.
type ProfileService interface {
	GetProfile() (domain.Profile, error)
	SaveProfile(profile domain.Profile) error
}

type profileService struct {
	profile store.ProfileStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profile store.ProfileStore) ProfileService {
	return &profileService{profile: profile}
}

func (s *profileService) GetProfile() (domain.Profile, error) {
	return s.profile.Get()
}

func (s *profileService) SaveProfile(profile domain.Profile) error {
	return s.profile.Set(profile)
}
