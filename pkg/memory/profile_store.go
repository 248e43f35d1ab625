package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/brandpilot/brandpilot/pkg/db/models"
)

// ErrProfileNotFound is returned when no profile exists for an id
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore reads user preference data. BrandPilot only consumes
// profiles; account management owns the writes.
type ProfileStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewProfileStore(db *gorm.DB, logger *logrus.Logger) *ProfileStore {
	return &ProfileStore{
		db:     db,
		logger: logger,
	}
}

// Get loads a profile by id
func (s *ProfileStore) Get(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// GetOnboardingByEmail loads the onboarding answers linked to a profile's
// email. A missing row is not an error: onboarding may be unfinished.
func (s *ProfileStore) GetOnboardingByEmail(ctx context.Context, email string) (*models.OnboardingProfile, error) {
	if email == "" {
		return nil, nil
	}

	var onboarding models.OnboardingProfile
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&onboarding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load onboarding profile: %w", err)
	}
	return &onboarding, nil
}
