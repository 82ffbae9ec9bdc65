package v1

import (
	"time"

	"github.com/google/uuid"
)

// ChatRequest DTO для хода диалога с компаньоном
// @Description DTO для хода диалога с компаньоном
type ChatRequest struct {
	UserID  string               `json:"user_id" validate:"required"`
	Message string               `json:"message" validate:"required"`
	History []ConversationTurnIn `json:"history,omitempty" validate:"dive"`
}

// ConversationTurnIn DTO входящей реплики истории
// @Description DTO входящей реплики истории
type ConversationTurnIn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatResponse DTO для ответа компаньона
// @Description DTO для ответа компаньона
type ChatResponse struct {
	Reply          string                  `json:"reply"`
	IsEmergency    bool                    `json:"is_emergency"`
	EmergencyEvent *EmergencyEventResponse `json:"emergency_event,omitempty"`
	Timestamp      time.Time               `json:"timestamp"`
}

// TriggerEmergencyRequest DTO тревожной кнопки
// @Description DTO тревожной кнопки
type TriggerEmergencyRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Message   string   `json:"message,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// ResolveEmergencyRequest DTO перевода события в терминальный статус
// @Description DTO перевода события в терминальный статус
type ResolveEmergencyRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved unresolved-timeout"`
}

// EmergencyEventResponse DTO экстренного события
// @Description DTO экстренного события
type EmergencyEventResponse struct {
	ID                  uuid.UUID                `json:"id"`
	UserID              string                   `json:"user_id"`
	TriggeredAt         time.Time                `json:"triggered_at"`
	TriggerSource       string                   `json:"trigger_source"`
	OriginatingMessage  string                   `json:"originating_message"`
	Latitude            *float64                 `json:"latitude,omitempty"`
	Longitude           *float64                 `json:"longitude,omitempty"`
	Status              string                   `json:"status"`
	DispatchResults     []DispatchResultResponse `json:"dispatch_results"`
	SafeZoneSuggestions []RankedSafeZoneResponse `json:"safe_zone_suggestions"`
}

// DispatchResultResponse DTO результата оповещения одной цели
// @Description DTO результата оповещения одной цели
type DispatchResultResponse struct {
	Channel     string    `json:"channel"`
	TargetName  string    `json:"target_name"`
	AttemptedAt time.Time `json:"attempted_at"`
	Outcome     string    `json:"outcome"`
	RetryCount  int       `json:"retry_count"`
}

// RankedSafeZoneResponse DTO безопасной зоны с дистанцией
// @Description DTO безопасной зоны с дистанцией
type RankedSafeZoneResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Address         string   `json:"address,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	OpenHours       string   `json:"open_hours,omitempty"`
	Verification    string   `json:"verification"`
	BaseSafetyScore int      `json:"base_safety_score"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
}

// CreateProfileRequest DTO онбординга профиля безопасности
// @Description DTO онбординга профиля безопасности
type CreateProfileRequest struct {
	UserID            string                    `json:"user_id" validate:"required"`
	Name              string                    `json:"name" validate:"required,min=2,max=255"`
	SafetyKeyword     string                    `json:"safety_keyword" validate:"required,min=3,max=64"`
	PreferredLanguage string                    `json:"preferred_language,omitempty"`
	EmergencyContacts []EmergencyContactRequest `json:"emergency_contacts" validate:"required,min=1,dive"`
	Latitude          *float64                  `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude         *float64                  `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// EmergencyContactRequest DTO экстренного контакта
// @Description DTO экстренного контакта
type EmergencyContactRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"required,e164"`
	Relation string `json:"relation,omitempty"`
	Priority int    `json:"priority" validate:"required,gt=0"`
}

// ProfileResponse DTO профиля безопасности
// @Description DTO профиля безопасности
type ProfileResponse struct {
	UserID            string                    `json:"user_id"`
	Name              string                    `json:"name"`
	SafetyKeyword     string                    `json:"safety_keyword"`
	PreferredLanguage string                    `json:"preferred_language,omitempty"`
	EmergencyContacts []EmergencyContactRequest `json:"emergency_contacts"`
	Latitude          *float64                  `json:"latitude,omitempty"`
	Longitude         *float64                  `json:"longitude,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// LocationUpdateRequest DTO обновления местоположения
// @Description DTO обновления местоположения
type LocationUpdateRequest struct {
	UserID    string  `json:"user_id" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}
