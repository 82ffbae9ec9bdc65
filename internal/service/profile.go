package service

import (
	"context"
	"fmt"

	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ProfileService определяет контракт управления профилями безопасности.
// Онбординг создает профиль; во время сессии ядро его только читает.
type ProfileService interface {
	CreateProfile(ctx context.Context, profile *models.UserSafetyProfile) error
	GetProfile(ctx context.Context, userID string) (*models.UserSafetyProfile, error)
}

type profileService struct {
	repo   ProfileRepository
	logger *logrus.Logger
}

func NewProfileService(repo ProfileRepository, logger *logrus.Logger) ProfileService {
	return &profileService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProfile создает профиль безопасности
func (s *profileService) CreateProfile(ctx context.Context, profile *models.UserSafetyProfile) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "CreateProfile",
		"user_id": profile.UserID,
	})
	log.Info("Creating safety profile")

	if len(profile.EmergencyContacts) == 0 {
		return fmt.Errorf("service: profile must have at least one emergency contact: %w", ErrValidation)
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		log.WithError(err).Error("Failed to create profile in repository")
		return fmt.Errorf("service: could not create profile: %w", err)
	}

	log.Info("Safety profile created")
	return nil
}

// GetProfile получает профиль по идентификатору пользователя
func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.UserSafetyProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "GetProfile",
		"user_id": userID,
	})

	profile, err := s.repo.GetProfileFromCache(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Profile cache read failed")
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = s.repo.GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get profile from repository")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	if err := s.repo.SetProfileCache(ctx, profile); err != nil {
		log.WithError(err).Warn("Failed to cache profile")
	}
	return profile, nil
}
