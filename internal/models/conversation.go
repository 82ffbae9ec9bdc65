package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли участников диалога
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn - одна реплика диалога. Последовательность реплик
// упорядочена и только дополняется, порядок вставки семантически значим.
type ConversationTurn struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// CompanionTurn - результат одного обращения к компаньону
type CompanionTurn struct {
	Reply          *ConversationTurn `json:"reply"`
	IsEmergency    bool              `json:"is_emergency"`
	EmergencyEvent *EmergencyEvent   `json:"emergency_event,omitempty"`
	Timestamp      time.Time         `json:"timestamp"`
}
