package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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

type handlerMocks struct {
	companion *mocks.MockCompanionService
	safeZones *mocks.MockSafeZoneService
	profiles  *mocks.MockProfileService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		companion: mocks.NewMockCompanionService(ctrl),
		safeZones: mocks.NewMockSafeZoneService(ctrl),
		profiles:  mocks.NewMockProfileService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.companion, m.safeZones, m.profiles, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", "test-api-key")
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestCompanionChat_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ChatRequest{UserID: "user-1", Message: "is this area safe?"}

	m.companion.EXPECT().
		Chat(gomock.Any(), "user-1", "is this area safe?", gomock.Any()).
		Return(&models.CompanionTurn{
			Reply:     &models.ConversationTurn{Role: models.RoleAssistant, Content: "Yes, quite safe."},
			Timestamp: time.Now().UTC(),
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/companion/chat", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Yes, quite safe.", resp.Reply)
	assert.False(t, resp.IsEmergency)
	assert.Nil(t, resp.EmergencyEvent)
}

func TestCompanionChat_EmergencyDetected(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ChatRequest{UserID: "user-1", Message: "pineapple"}
	event := &models.EmergencyEvent{
		ID:     uuid.New(),
		UserID: "user-1",
		Status: models.EmergencyStatusActive,
		DispatchResults: []models.AlertDispatchResult{
			{Channel: models.ChannelContact, TargetName: "Mom", Outcome: models.OutcomeDelivered},
		},
	}

	m.companion.EXPECT().
		Chat(gomock.Any(), "user-1", "pineapple", gomock.Any()).
		Return(&models.CompanionTurn{
			Reply:          &models.ConversationTurn{Role: models.RoleAssistant, Content: service.FallbackReply},
			IsEmergency:    true,
			EmergencyEvent: event,
			Timestamp:      time.Now().UTC(),
		}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/companion/chat", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsEmergency)
	require.NotNil(t, resp.EmergencyEvent)
	assert.Equal(t, event.ID, resp.EmergencyEvent.ID)
	require.Len(t, resp.EmergencyEvent.DispatchResults, 1)
	assert.Equal(t, "Mom", resp.EmergencyEvent.DispatchResults[0].TargetName)
}

func TestCompanionChat_MissingMessage(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := ChatRequest{UserID: "user-1"}

	w := makeRequest(router, http.MethodPost, "/api/v1/companion/chat", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompanionChat_ProfileNotFound(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := ChatRequest{UserID: "ghost", Message: "hello"}

	m.companion.EXPECT().
		Chat(gomock.Any(), "ghost", "hello", gomock.Any()).
		Return(nil, fmt.Errorf("service: could not get profile: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/companion/chat", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompanionChat_Unauthorized(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := ChatRequest{UserID: "user-1", Message: "hello"}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/companion/chat", jsonBody(t, reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSafeZones_Ranked(t *testing.T) {
	m, router := newTestHandler(t)
	ranked := []models.RankedSafeZone{
		{
			SafeZone: models.SafeZone{
				ID:              "4",
				Name:            "Tourist Police Station",
				Category:        models.SafeZonePolice,
				Location:        models.Location{Lat: 13.7469, Lng: 100.5349},
				Verification:    "government",
				BaseSafetyScore: 97,
			},
			DistanceKm: 0.0423,
		},
	}

	m.safeZones.EXPECT().
		QuerySafeZones(gomock.Any(), gomock.Not(gomock.Nil()), "").
		Return(ranked, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/safe-zones?lat=13.7469&lng=100.5349", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RankedSafeZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Tourist Police Station", resp[0].Name)
	// Дистанция в ответе округляется до 0.1 км
	require.NotNil(t, resp[0].DistanceKm)
	assert.Equal(t, 0.0, *resp[0].DistanceKm)
}

func TestListSafeZones_WithoutReferencePoint(t *testing.T) {
	m, router := newTestHandler(t)
	zones := []models.RankedSafeZone{
		{SafeZone: models.SafeZone{ID: "2", Name: "Women's Café & Co-working", Category: models.SafeZoneCafe}},
	}

	m.safeZones.EXPECT().
		QuerySafeZones(gomock.Any(), gomock.Nil(), models.SafeZoneCafe).
		Return(zones, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/safe-zones?category=cafe", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []RankedSafeZoneResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	// Без опорной точки дистанция не отдается
	assert.Nil(t, resp[0].DistanceKm)
}

func TestListSafeZones_InvalidCoordinates(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/safe-zones?lat=abc&lng=100.5", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTriggerEmergency_Created(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lng := 13.7469, 100.5349
	reqBody := TriggerEmergencyRequest{UserID: "user-1", Message: "I need help", Latitude: &lat, Longitude: &lng}
	event := &models.EmergencyEvent{
		ID:            uuid.New(),
		UserID:        "user-1",
		Status:        models.EmergencyStatusActive,
		TriggerSource: models.TriggerSourceKeyword,
		Location:      &models.Location{Lat: lat, Lng: lng},
	}

	m.companion.EXPECT().
		TriggerEmergency(gomock.Any(), "user-1", "I need help", gomock.Not(gomock.Nil())).
		Return(event, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergency", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EmergencyEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.ID)
	require.NotNil(t, resp.Latitude)
	assert.Equal(t, lat, *resp.Latitude)
}

func TestTriggerEmergency_AlreadyInFlight(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := TriggerEmergencyRequest{UserID: "user-1"}

	// Повтор в окно дедупликации: сервис возвращает (nil, nil)
	m.companion.EXPECT().
		TriggerEmergency(gomock.Any(), "user-1", "Manual emergency trigger", gomock.Nil()).
		Return(nil, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergency", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "dispatch already in flight")
}

func TestTriggerEmergency_NoContactsConfigured(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := TriggerEmergencyRequest{UserID: "user-1"}

	m.companion.EXPECT().
		TriggerEmergency(gomock.Any(), "user-1", "Manual emergency trigger", gomock.Nil()).
		Return(nil, fmt.Errorf("service: no targets: %w", service.ErrConfiguration)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/emergency", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetEmergency_Success(t *testing.T) {
	m, router := newTestHandler(t)
	eventID := uuid.New()
	event := &models.EmergencyEvent{ID: eventID, UserID: "user-1", Status: models.EmergencyStatusActive}

	m.companion.EXPECT().
		GetEmergency(gomock.Any(), eventID).
		Return(event, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/emergencies/"+eventID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp EmergencyEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
}

func TestGetEmergency_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/emergencies/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEmergency_NotFound(t *testing.T) {
	m, router := newTestHandler(t)
	eventID := uuid.New()

	m.companion.EXPECT().
		GetEmergency(gomock.Any(), eventID).
		Return(nil, fmt.Errorf("service: could not get emergency event: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/emergencies/"+eventID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResolveEmergency_Success(t *testing.T) {
	m, router := newTestHandler(t)
	eventID := uuid.New()
	reqBody := ResolveEmergencyRequest{Status: models.EmergencyStatusResolved}

	m.companion.EXPECT().
		ResolveEmergency(gomock.Any(), eventID, models.EmergencyStatusResolved).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/emergencies/"+eventID.String()+"/resolve", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResolveEmergency_InvalidStatus(t *testing.T) {
	_, router := newTestHandler(t)
	eventID := uuid.New()
	reqBody := ResolveEmergencyRequest{Status: "active"}

	w := makeRequest(router, http.MethodPatch, "/api/v1/emergencies/"+eventID.String()+"/resolve", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveEmergency_AlreadyTerminal(t *testing.T) {
	m, router := newTestHandler(t)
	eventID := uuid.New()
	reqBody := ResolveEmergencyRequest{Status: models.EmergencyStatusResolved}

	m.companion.EXPECT().
		ResolveEmergency(gomock.Any(), eventID, models.EmergencyStatusResolved).
		Return(fmt.Errorf("service: could not resolve emergency event: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodPatch, "/api/v1/emergencies/"+eventID.String()+"/resolve", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLocation_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := LocationUpdateRequest{UserID: "user-1", Latitude: 13.7469, Longitude: 100.5349}

	m.companion.EXPECT().
		UpdateLocation(gomock.Any(), "user-1", 13.7469, 100.5349).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/update", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateLocation_InvalidLatitude(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := LocationUpdateRequest{UserID: "user-1", Latitude: 123.0, Longitude: 100.5349}

	w := makeRequest(router, http.MethodPost, "/api/v1/location/update", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfile_Success(t *testing.T) {
	m, router := newTestHandler(t)
	reqBody := CreateProfileRequest{
		UserID:        "user-1",
		Name:          "Sarah",
		SafetyKeyword: "pineapple",
		EmergencyContacts: []EmergencyContactRequest{
			{Name: "Mom", Phone: "+14155550100", Relation: "mother", Priority: 1},
		},
	}

	m.profiles.EXPECT().
		CreateProfile(gomock.Any(), gomock.AssignableToTypeOf(&models.UserSafetyProfile{})).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/profiles", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "pineapple", resp.SafetyKeyword)
}

func TestCreateProfile_NoContacts(t *testing.T) {
	_, router := newTestHandler(t)
	reqBody := CreateProfileRequest{
		UserID:        "user-1",
		Name:          "Sarah",
		SafetyKeyword: "pineapple",
	}

	w := makeRequest(router, http.MethodPost, "/api/v1/profiles", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfile_Success(t *testing.T) {
	m, router := newTestHandler(t)
	profile := &models.UserSafetyProfile{
		UserID:        "user-1",
		Name:          "Sarah",
		SafetyKeyword: "pineapple",
		EmergencyContacts: []models.EmergencyContact{
			{Name: "Mom", Phone: "+14155550100", Relation: "mother", Priority: 1},
		},
	}

	m.profiles.EXPECT().
		GetProfile(gomock.Any(), "user-1").
		Return(profile, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/profiles/user-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sarah", resp.Name)
	require.Len(t, resp.EmergencyContacts, 1)
}

func TestGetProfile_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.profiles.EXPECT().
		GetProfile(gomock.Any(), "ghost").
		Return(nil, fmt.Errorf("service: could not get profile: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/profiles/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
