package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ProfileRepository определяет контракт хранилища профилей безопасности
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.UserSafetyProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.UserSafetyProfile, error)
	UpdateLocation(ctx context.Context, userID string, lat, lng float64) error
	SaveLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
	GetProfileFromCache(ctx context.Context, userID string) (*models.UserSafetyProfile, error)
	SetProfileCache(ctx context.Context, profile *models.UserSafetyProfile) error
	InvalidateProfileCache(ctx context.Context, userID string) error
}

// CompanionService определяет контракт бизнес-логики компаньона безопасности
type CompanionService interface {
	Chat(ctx context.Context, userID, message string, history []models.ConversationTurn) (*models.CompanionTurn, error)
	TriggerEmergency(ctx context.Context, userID, message string, location *models.Location) (*models.EmergencyEvent, error)
	GetEmergency(ctx context.Context, id uuid.UUID) (*models.EmergencyEvent, error)
	ResolveEmergency(ctx context.Context, id uuid.UUID, status string) error
	UpdateLocation(ctx context.Context, userID string, lat, lng float64) error
}

type companionService struct {
	profiles   ProfileRepository
	sessions   ConversationSessionManager
	dispatcher AlertDispatchEngine
	events     EmergencyRepository
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewCompanionService(profiles ProfileRepository, sessions ConversationSessionManager, dispatcher AlertDispatchEngine, events EmergencyRepository, logger *logrus.Logger, cfg *config.Config) CompanionService {
	return &companionService{
		profiles:   profiles,
		sessions:   sessions,
		dispatcher: dispatcher,
		events:     events,
		logger:     logger,
		cfg:        cfg,
	}
}

// Chat обрабатывает одно обращение пользователя: ход диалога через
// языковую модель, классификация тревоги по сообщению и ответу,
// при тревоге - рассылка оповещений. Недоступность модели не гасит
// экстренный путь: проверки keyword/phrase работают по самому сообщению,
// а пользователю уходит запасной ответ.
func (s *companionService) Chat(ctx context.Context, userID, message string, history []models.ConversationTurn) (*models.CompanionTurn, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "companion",
		"method":  "Chat",
		"user_id": userID,
	})

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	reply, err := s.sessions.Advance(ctx, profile, history, message)
	modelReply := ""
	switch {
	case err == nil:
		modelReply = reply.Content
	case errors.Is(err, ErrValidation):
		return nil, err
	default:
		// Сбой провайдера: диалог за этот ход не меняется, пользователь
		// получает запасной ответ, но классификация обязана отработать.
		log.WithError(err).Error("Provider failure, falling back to safe reply")
		reply = &models.ConversationTurn{
			ID:        uuid.New(),
			Role:      models.RoleAssistant,
			Content:   FallbackReply,
			Timestamp: time.Now().UTC(),
		}
	}

	decision := ClassifyEmergency(profile, message, modelReply)

	var event *models.EmergencyEvent
	if decision.IsEmergency {
		log.WithField("source", decision.Source).Warn("Emergency detected in conversation")
		event, err = s.dispatcher.Dispatch(ctx, profile, decision, nil, message)
		if err != nil {
			// Оповестить не удалось - это операторская проблема, ответ
			// пользователю все равно уходит.
			log.WithError(err).Error("Emergency dispatch failed")
		}
	}

	return &models.CompanionTurn{
		Reply:          reply,
		IsEmergency:    decision.IsEmergency,
		EmergencyEvent: event,
		Timestamp:      time.Now().UTC(),
	}, nil
}

// TriggerEmergency запускает рассылку оповещений без хода диалога
// (тревожная кнопка). Возвращает (nil, nil), если рассылка для
// пользователя уже идет.
func (s *companionService) TriggerEmergency(ctx context.Context, userID, message string, location *models.Location) (*models.EmergencyEvent, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "companion",
		"method":  "TriggerEmergency",
		"user_id": userID,
	})

	profile, err := s.getProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Warn("Manual emergency trigger")
	decision := models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceKeyword}
	return s.dispatcher.Dispatch(ctx, profile, decision, location, message)
}

// GetEmergency возвращает экстренное событие по ID
func (s *companionService) GetEmergency(ctx context.Context, id uuid.UUID) (*models.EmergencyEvent, error) {
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get emergency event: %w", err)
	}
	return event, nil
}

// ResolveEmergency переводит событие в терминальный статус. Переход
// выполняет внешний оператор; ядро лишь принимает его.
func (s *companionService) ResolveEmergency(ctx context.Context, id uuid.UUID, status string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "companion",
		"method":   "ResolveEmergency",
		"event_id": id,
		"status":   status,
	})

	if status != models.EmergencyStatusResolved && status != models.EmergencyStatusUnresolvedTimeout {
		return fmt.Errorf("service: invalid terminal status %q: %w", status, ErrValidation)
	}

	if err := s.events.UpdateEventStatus(ctx, id, status); err != nil {
		log.WithError(err).Error("Failed to resolve emergency event")
		return fmt.Errorf("service: could not resolve emergency event: %w", err)
	}
	log.Info("Emergency event resolved")
	return nil
}

// UpdateLocation обновляет текущее местоположение в профиле и сохраняет
// запись об обновлении
func (s *companionService) UpdateLocation(ctx context.Context, userID string, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "companion",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	if err := s.profiles.UpdateLocation(ctx, userID, lat, lng); err != nil {
		log.WithError(err).Error("Failed to update profile location")
		return fmt.Errorf("service: could not update location: %w", err)
	}

	update := &models.LocationUpdate{UserID: userID, Latitude: lat, Longitude: lng}
	if err := s.profiles.SaveLocationUpdate(ctx, update); err != nil {
		log.WithError(err).Error("Failed to save location update record")
		return fmt.Errorf("service: could not save location update: %w", err)
	}

	if err := s.profiles.InvalidateProfileCache(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate profile cache")
	}

	log.Info("Location updated")
	return nil
}

// getProfile читает профиль через кеш (идентично пути инцидентов:
// кеш - бд - запись в кеш)
func (s *companionService) getProfile(ctx context.Context, userID string) (*models.UserSafetyProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "companion",
		"method":  "getProfile",
		"user_id": userID,
	})

	profile, err := s.profiles.GetProfileFromCache(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Profile cache read failed")
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Profile not found")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	if err := s.profiles.SetProfileCache(ctx, profile); err != nil {
		log.WithError(err).Warn("Failed to cache profile")
	}
	return profile, nil
}
