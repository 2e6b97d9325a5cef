package service

import (
	"menuboard/internal/domain"
)

type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns domain.ErrProfileNotFound when the owner has never saved a
// profile; callers substitute empty defaults instead of failing.
func (s *ProfileService) Get(ownerID string) (*domain.RestaurantProfile, error) {
	return s.repo.GetProfile(ownerID)
}

// Upsert merge-writes the supplied fields, creating the profile on first
// write. Last writer wins; there is no version check.
func (s *ProfileService) Upsert(ownerID string, patch domain.ProfilePatch) error {
	return s.repo.UpsertProfile(ownerID, patch)
}

func (s *ProfileService) ListAll() ([]domain.RestaurantProfile, error) {
	return s.repo.ListProfiles()
}

var _ ProfileServiceInterface = (*ProfileService)(nil)
