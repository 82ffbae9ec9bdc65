package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/shenikar/travel_guardian_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type companionMocks struct {
	profiles   *mocks.MockProfileRepository
	sessions   *mocks.MockConversationSessionManager
	dispatcher *mocks.MockAlertDispatchEngine
	events     *mocks.MockEmergencyRepository
}

// newTestCompanionService — вспомогательная функция для создания сервиса компаньона с моками.
func newTestCompanionService(t *testing.T) (service.CompanionService, companionMocks) {
	ctrl := gomock.NewController(t)
	m := companionMocks{
		profiles:   mocks.NewMockProfileRepository(ctrl),
		sessions:   mocks.NewMockConversationSessionManager(ctrl),
		dispatcher: mocks.NewMockAlertDispatchEngine(ctrl),
		events:     mocks.NewMockEmergencyRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}
	svc := service.NewCompanionService(m.profiles, m.sessions, m.dispatcher, m.events, logger, cfg)
	return svc, m
}

func companionProfile() *models.UserSafetyProfile {
	return &models.UserSafetyProfile{
		UserID:        "user-1",
		Name:          "Sarah",
		SafetyKeyword: "pineapple",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Mom", Phone: "+14155550100", Relation: "mother", Priority: 1},
		},
	}
}

func assistantTurn(content string) *models.ConversationTurn {
	return &models.ConversationTurn{
		ID:      uuid.New(),
		Role:    models.RoleAssistant,
		Content: content,
	}
}

func TestChat_RegularMessage_NoEmergency(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()

	// Ожидания
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "what should I see in Bangkok?").
		Return(assistantTurn("Visit the Grand Palace early in the morning."), nil).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "what should I see in Bangkok?", nil)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.False(t, turn.IsEmergency)
	assert.Nil(t, turn.EmergencyEvent)
	assert.Equal(t, "Visit the Grand Palace early in the morning.", turn.Reply.Content)
}

func TestChat_KeywordInMessage_DispatchesEmergency(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()
	event := &models.EmergencyEvent{ID: uuid.New(), UserID: "user-1", Status: models.EmergencyStatusActive}

	// Ожидания
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "I love pineapple juice").
		Return(assistantTurn(service.EmergencyMarker+" I'm alerting your emergency contacts."), nil).
		Times(1)
	m.dispatcher.EXPECT().
		Dispatch(ctx, profile, models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceKeyword}, gomock.Nil(), "I love pineapple juice").
		Return(event, nil).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "I love pineapple juice", nil)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.True(t, turn.IsEmergency)
	assert.Equal(t, event, turn.EmergencyEvent)
}

func TestChat_ProviderFailure_FallbackReplyAndEmergencyStillFires(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()
	providerErr := fmt.Errorf("gateway: request failed: %w", service.ErrProvider)
	event := &models.EmergencyEvent{ID: uuid.New(), UserID: "user-1", Status: models.EmergencyStatusActive}

	// Ожидания: модель недоступна, но ключевое слово в самом сообщении
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "pineapple").
		Return(nil, providerErr).
		Times(1)
	m.dispatcher.EXPECT().
		Dispatch(ctx, profile, models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceKeyword}, gomock.Nil(), "pineapple").
		Return(event, nil).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "pineapple", nil)

	// Проверки: пользователю уходит запасной ответ, тревога разослана
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.Equal(t, service.FallbackReply, turn.Reply.Content)
	assert.True(t, turn.IsEmergency)
	assert.Equal(t, event, turn.EmergencyEvent)
}

func TestChat_ProviderFailure_MarkerNotClassifiedFromFallback(t *testing.T) {
	// Подготовка: при сбое модели ее "ответа" нет, маркер искать негде
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()
	providerErr := fmt.Errorf("gateway: request failed: %w", service.ErrProvider)

	// Ожидания: диспетчеризации быть не должно
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "is this area safe?").
		Return(nil, providerErr).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "is this area safe?", nil)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.False(t, turn.IsEmergency)
	assert.Equal(t, service.FallbackReply, turn.Reply.Content)
}

func TestChat_ValidationErrorPropagated(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()
	validationErr := fmt.Errorf("service: message is empty: %w", service.ErrValidation)

	// Ожидания
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "  ").
		Return(nil, validationErr).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "  ", nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Nil(t, turn)
}

func TestChat_UnknownProfile_ReturnsNotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	notFound := fmt.Errorf("repository: profile not found: %w", service.ErrNotFound)

	// Ожидания
	m.profiles.EXPECT().GetProfileFromCache(ctx, "ghost").Return(nil, nil).Times(1)
	m.profiles.EXPECT().GetByUserID(ctx, "ghost").Return(nil, notFound).Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "ghost", "hello", nil)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Nil(t, turn)
}

func TestChat_DispatchFailureDoesNotBlockReply(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()

	// Ожидания: рассылка падает, ответ пользователю все равно уходит
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.sessions.EXPECT().
		Advance(ctx, profile, gomock.Nil(), "help me").
		Return(assistantTurn("Stay calm, I am here."), nil).
		Times(1)
	m.dispatcher.EXPECT().
		Dispatch(ctx, profile, models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourcePhrase}, gomock.Nil(), "help me").
		Return(nil, assert.AnError).
		Times(1)

	// Действие
	turn, err := svc.Chat(ctx, "user-1", "help me", nil)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.True(t, turn.IsEmergency)
	assert.Nil(t, turn.EmergencyEvent)
	assert.Equal(t, "Stay calm, I am here.", turn.Reply.Content)
}

func TestTriggerEmergency_ManualButton(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	profile := companionProfile()
	location := &models.Location{Lat: 13.7469, Lng: 100.5349}
	event := &models.EmergencyEvent{ID: uuid.New(), UserID: "user-1", Status: models.EmergencyStatusActive}

	// Ожидания
	m.profiles.EXPECT().GetProfileFromCache(ctx, "user-1").Return(profile, nil).Times(1)
	m.dispatcher.EXPECT().
		Dispatch(ctx, profile, models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceKeyword}, location, "I need help").
		Return(event, nil).
		Times(1)

	// Действие
	got, err := svc.TriggerEmergency(ctx, "user-1", "I need help", location)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestResolveEmergency_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	m.events.EXPECT().
		UpdateEventStatus(ctx, eventID, models.EmergencyStatusResolved).
		Return(nil).
		Times(1)

	// Действие
	err := svc.ResolveEmergency(ctx, eventID, models.EmergencyStatusResolved)

	// Проверки
	require.NoError(t, err)
}

func TestResolveEmergency_InvalidStatus(t *testing.T) {
	// Подготовка
	svc, _ := newTestCompanionService(t)
	ctx := context.Background()

	// Действие: "active" не является терминальным статусом
	err := svc.ResolveEmergency(ctx, uuid.New(), models.EmergencyStatusActive)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestResolveEmergency_AlreadyTerminal(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()
	eventID := uuid.New()
	notFound := fmt.Errorf("repository: event not found or already terminal: %w", service.ErrNotFound)

	// Ожидания
	m.events.EXPECT().
		UpdateEventStatus(ctx, eventID, models.EmergencyStatusResolved).
		Return(notFound).
		Times(1)

	// Действие
	err := svc.ResolveEmergency(ctx, eventID, models.EmergencyStatusResolved)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestCompanionService(t)
	ctx := context.Background()

	// Ожидания
	m.profiles.EXPECT().UpdateLocation(ctx, "user-1", 13.7469, 100.5349).Return(nil).Times(1)
	m.profiles.EXPECT().
		SaveLocationUpdate(ctx, gomock.AssignableToTypeOf(&models.LocationUpdate{})).
		Return(nil).
		Times(1)
	m.profiles.EXPECT().InvalidateProfileCache(ctx, "user-1").Return(nil).Times(1)

	// Действие
	err := svc.UpdateLocation(ctx, "user-1", 13.7469, 100.5349)

	// Проверки
	require.NoError(t, err)
}
