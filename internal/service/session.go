package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CompletionOptions - параметры генерации для языковой модели
type CompletionOptions struct {
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
	SafetyThreshold string
}

// DefaultCompletionOptions возвращает параметры генерации по умолчанию
func DefaultCompletionOptions() CompletionOptions {
	return CompletionOptions{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
		SafetyThreshold: "BLOCK_MEDIUM_AND_ABOVE",
	}
}

// LanguageModelGateway определяет контракт провайдера языковой модели.
// Реализация обязана уважать контекст (таймаут/отмена) и возвращать
// ошибку, обернутую в ErrProvider, при любом сбое или таймауте.
type LanguageModelGateway interface {
	Complete(ctx context.Context, systemInstructions string, history []models.ConversationTurn, newMessage string, opts CompletionOptions) (string, error)
}

// ConversationSessionManager определяет контракт менеджера диалоговых сессий
type ConversationSessionManager interface {
	Advance(ctx context.Context, profile *models.UserSafetyProfile, history []models.ConversationTurn, newMessage string) (*models.ConversationTurn, error)
	History(userID string) []models.ConversationTurn
	EndSession(userID string)
}

// session - диалог одного пользователя. Реплики только добавляются,
// порядок вставки и есть порядок диалога.
type session struct {
	mu    sync.Mutex
	turns []models.ConversationTurn
}

type sessionManager struct {
	gateway LanguageModelGateway
	logger  *logrus.Logger
	opts    CompletionOptions

	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionManager(gateway LanguageModelGateway, logger *logrus.Logger) ConversationSessionManager {
	return &sessionManager{
		gateway:  gateway,
		logger:   logger,
		opts:     DefaultCompletionOptions(),
		sessions: make(map[string]*session),
	}
}

func (m *sessionManager) session(userID string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	if !ok {
		s = &session{}
		m.sessions[userID] = s
	}
	return s
}

// Advance выполняет один ход диалога: собирает запрос из системной
// инструкции, накопленной истории и нового сообщения, делает ровно один
// вызов шлюза и добавляет обе реплики в историю. Пустое после обрезки
// сообщение отклоняется без обращения к модели. Сбой провайдера
// поднимается наверх, история за этот ход не меняется; повторов нет -
// решение о ретрае за вызывающим.
func (m *sessionManager) Advance(ctx context.Context, profile *models.UserSafetyProfile, history []models.ConversationTurn, newMessage string) (*models.ConversationTurn, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Advance",
		"user_id": profile.UserID,
	})

	trimmed := strings.TrimSpace(newMessage)
	if trimmed == "" {
		log.Warn("Rejected blank message")
		return nil, fmt.Errorf("service: message is empty: %w", ErrValidation)
	}

	sess := m.session(profile.UserID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// Клиент может принести историю с собой (первый запрос после
	// переподключения) - она становится началом сессии.
	if len(sess.turns) == 0 && len(history) > 0 {
		sess.turns = append(sess.turns, history...)
	}

	systemPrompt := BuildSystemPrompt(profile)

	log.WithField("history_len", len(sess.turns)).Info("Calling language model gateway")
	replyText, err := m.gateway.Complete(ctx, systemPrompt, sess.turns, trimmed, m.opts)
	if err != nil {
		log.WithError(err).Error("Language model call failed")
		return nil, fmt.Errorf("service: language model call failed: %w", err)
	}

	now := time.Now().UTC()
	userTurn := models.ConversationTurn{
		ID:        uuid.New(),
		Role:      models.RoleUser,
		Content:   trimmed,
		Timestamp: now,
	}
	assistantTurn := models.ConversationTurn{
		ID:        uuid.New(),
		Role:      models.RoleAssistant,
		Content:   replyText,
		Timestamp: now,
	}
	sess.turns = append(sess.turns, userTurn, assistantTurn)

	log.Info("Conversation advanced")
	return &assistantTurn, nil
}

// History возвращает копию накопленной истории пользователя
func (m *sessionManager) History(userID string) []models.ConversationTurn {
	sess := m.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	out := make([]models.ConversationTurn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// EndSession отбрасывает историю пользователя. Межсессионное хранение
// диалогов не предусмотрено.
func (m *sessionManager) EndSession(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
