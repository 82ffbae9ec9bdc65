package models

import (
	"time"
)

// Location - координаты точки (широта/долгота)
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EmergencyContact - экстренный контакт пользователя.
// Priority определяет порядок оповещения: 1 - основной контакт.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
	Priority int    `json:"priority"`
}

// UserSafetyProfile - профиль безопасности пользователя, создается при онбординге.
// Ядро только читает профиль; меняется во время сессии только CurrentLocation.
type UserSafetyProfile struct {
	UserID            string             `json:"user_id"`
	Name              string             `json:"name"`
	SafetyKeyword     string             `json:"safety_keyword"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	PreferredLanguage string             `json:"preferred_language"`
	CurrentLocation   *Location          `json:"current_location,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// LocationUpdate представляет запись об обновлении местоположения пользователя
type LocationUpdate struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}
