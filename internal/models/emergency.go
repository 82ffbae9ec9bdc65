package models

import (
	"time"

	"github.com/google/uuid"
)

// Источник срабатывания тревоги
const (
	TriggerSourceKeyword     = "keyword"
	TriggerSourcePhrase      = "phrase"
	TriggerSourceModelMarker = "modelMarker"
)

// Статусы экстренного события
const (
	EmergencyStatusActive            = "active"
	EmergencyStatusResolved          = "resolved"
	EmergencyStatusUnresolvedTimeout = "unresolved-timeout"
)

// Каналы доставки оповещений
const (
	ChannelContact       = "contact"
	ChannelLocalServices = "local-services"
)

// Исходы доставки оповещения
const (
	OutcomeDelivered = "delivered"
	OutcomePending   = "pending"
	OutcomeFailed    = "failed"
)

// AlertDispatchResult - результат одной попытки оповещения цели.
// Цели фиксируются на момент диспетчеризации: последующие правки профиля
// не меняют уже созданное событие.
type AlertDispatchResult struct {
	Channel     string    `json:"channel"`
	TargetName  string    `json:"target_name"`
	AttemptedAt time.Time `json:"attempted_at"`
	Outcome     string    `json:"outcome"`
	RetryCount  int       `json:"retry_count"`
}

// EmergencyEvent - экстренное событие. Создается ровно один раз на каждую
// обнаруженную тревогу и неизменяемо после завершения диспетчеризации,
// кроме перехода в терминальный статус оператором.
type EmergencyEvent struct {
	ID                  uuid.UUID             `json:"id"`
	UserID              string                `json:"user_id"`
	TriggeredAt         time.Time             `json:"triggered_at"`
	TriggerSource       string                `json:"trigger_source"`
	OriginatingMessage  string                `json:"originating_message"`
	Location            *Location             `json:"location,omitempty"`
	Status              string                `json:"status"`
	DispatchResults     []AlertDispatchResult `json:"dispatch_results"`
	SafeZoneSuggestions []RankedSafeZone      `json:"safe_zone_suggestions"`
}

// EmergencyDecision - решение классификатора по одной реплике
type EmergencyDecision struct {
	IsEmergency bool   `json:"is_emergency"`
	Source      string `json:"source,omitempty"`
}
