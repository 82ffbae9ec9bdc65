package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/shenikar/travel_guardian_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionManager — вспомогательная функция для создания менеджера сессий с моком шлюза.
func newTestSessionManager(t *testing.T) (service.ConversationSessionManager, *mocks.MockLanguageModelGateway) {
	ctrl := gomock.NewController(t)
	gatewayMock := mocks.NewMockLanguageModelGateway(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewSessionManager(gatewayMock, logger), gatewayMock
}

func sessionProfile() *models.UserSafetyProfile {
	return &models.UserSafetyProfile{
		UserID:            "user-1",
		Name:              "Sarah",
		SafetyKeyword:     "pineapple",
		PreferredLanguage: "en",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Mom", Phone: "+14155550100", Relation: "mother", Priority: 1},
		},
	}
}

func TestAdvance_Success_AppendsBothTurns(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()

	// Ожидания
	gatewayMock.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "is this area safe at night?", gomock.Any()).
		Return("Generally yes, stay on the main streets.", nil).
		Times(1)

	// Действие
	reply, err := manager.Advance(ctx, profile, nil, "is this area safe at night?")

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, reply)
	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "Generally yes, stay on the main streets.", reply.Content)

	history := manager.History(profile.UserID)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "is this area safe at night?", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
}

func TestAdvance_BlankMessage_RejectedWithoutGatewayCall(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()

	// Ожидания: шлюз не должен вызываться вовсе
	gatewayMock.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	reply, err := manager.Advance(ctx, profile, nil, "   \t\n  ")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
	assert.Nil(t, reply)
	assert.Empty(t, manager.History(profile.UserID))
}

func TestAdvance_ProviderFailure_HistoryUnchanged(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()
	providerErr := fmt.Errorf("gateway: request failed: %w", service.ErrProvider)

	// Ожидания
	gatewayMock.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "hello", gomock.Any()).
		Return("", providerErr).
		Times(1)

	// Действие
	reply, err := manager.Advance(ctx, profile, nil, "hello")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrProvider)
	assert.Nil(t, reply)
	// Неудавшийся ход не оставляет следов в истории
	assert.Empty(t, manager.History(profile.UserID))
}

func TestAdvance_SeedsSessionFromClientHistory(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()
	seed := []models.ConversationTurn{
		{Role: models.RoleUser, Content: "hi"},
		{Role: models.RoleAssistant, Content: "Hello Sarah!"},
	}

	// Ожидания: шлюз получает принесенную клиентом историю
	gatewayMock.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Len(2), "where am I?", gomock.Any()).
		Return("You are near Siam Paragon.", nil).
		Times(1)

	// Действие
	_, err := manager.Advance(ctx, profile, seed, "where am I?")

	// Проверки
	require.NoError(t, err)
	history := manager.History(profile.UserID)
	require.Len(t, history, 4)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, "You are near Siam Paragon.", history[3].Content)
}

func TestAdvance_SystemPromptCarriesKeywordAndContacts(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()

	var capturedPrompt string

	// Ожидания
	gatewayMock.EXPECT().
		Complete(ctx, gomock.Any(), gomock.Any(), "hello", gomock.Any()).
		DoAndReturn(func(_ context.Context, systemInstructions string, _ []models.ConversationTurn, _ string, _ service.CompletionOptions) (string, error) {
			capturedPrompt = systemInstructions
			return "Hi!", nil
		}).
		Times(1)

	// Действие
	_, err := manager.Advance(ctx, profile, nil, "hello")

	// Проверки
	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "pineapple")
	assert.Contains(t, capturedPrompt, "Mom")
	assert.Contains(t, capturedPrompt, service.EmergencyMarker)
}

func TestEndSession_DropsHistory(t *testing.T) {
	// Подготовка
	manager, gatewayMock := newTestSessionManager(t)
	ctx := context.Background()
	profile := sessionProfile()

	gatewayMock.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("ok", nil).
		Times(1)

	_, err := manager.Advance(ctx, profile, nil, "hello")
	require.NoError(t, err)
	require.NotEmpty(t, manager.History(profile.UserID))

	// Действие
	manager.EndSession(profile.UserID)

	// Проверки
	assert.Empty(t, manager.History(profile.UserID))
}
