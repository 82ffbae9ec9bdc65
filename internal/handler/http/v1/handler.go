package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	companionService service.CompanionService
	safeZoneService  service.SafeZoneService
	profileService   service.ProfileService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(companionService service.CompanionService, safeZoneService service.SafeZoneService, profileService service.ProfileService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		companionService: companionService,
		safeZoneService:  safeZoneService,
		profileService:   profileService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Advance a companion conversation
// @Description Send a message to the safety companion. Inspects the turn for emergency indicators and dispatches alerts when they fire. Requires API key.
// @Tags Companion
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param chat body ChatRequest true "Chat request"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /companion/chat [post]
func (h *Handler) companionChat(c *gin.Context) {
	var input ChatRequest
	log := h.logger.WithField("method", "companionChat")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	turn, err := h.companionService.Chat(c.Request.Context(), input.UserID, input.Message, DTOToHistory(input.History))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.WithError(err).Warn("Chat input rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, service.ErrNotFound):
			log.WithError(err).Warn("Profile not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			log.WithError(err).Error("Failed to advance conversation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Reply:          turn.Reply.Content,
		IsEmergency:    turn.IsEmergency,
		EmergencyEvent: ModelToEmergencyEventResponse(turn.EmergencyEvent),
		Timestamp:      turn.Timestamp,
	})
}

// @Summary List safe zones
// @Description List safe zones, ranked by distance when coordinates are supplied. Requires API key.
// @Tags SafeZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Reference latitude"
// @Param lng query number false "Reference longitude"
// @Param category query string false "Category filter (hospital, embassy, police, cafe, hotel, other)"
// @Success 200 {array} RankedSafeZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /safe-zones [get]
func (h *Handler) listSafeZones(c *gin.Context) {
	log := h.logger.WithField("method", "listSafeZones")

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	category := c.Query("category")

	var ref *models.Location
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		ref = &models.Location{Lat: lat, Lng: lng}
	}

	zones, err := h.safeZoneService.QuerySafeZones(c.Request.Context(), ref, category)
	if err != nil {
		log.WithError(err).Error("Failed to query safe zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSafeZoneResponses(zones, ref != nil))
}

// @Summary Trigger an emergency manually
// @Description Panic button: dispatch alerts to emergency contacts and local services without a conversation turn. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body TriggerEmergencyRequest true "Emergency trigger request"
// @Success 201 {object} EmergencyEventResponse
// @Success 200 {object} map[string]string "Dispatch already in flight"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 422 {object} map[string]string "Profile has no dispatch targets"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency [post]
func (h *Handler) triggerEmergency(c *gin.Context) {
	var input TriggerEmergencyRequest
	log := h.logger.WithField("method", "triggerEmergency")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var location *models.Location
	if input.Latitude != nil && input.Longitude != nil {
		location = &models.Location{Lat: *input.Latitude, Lng: *input.Longitude}
	}

	message := input.Message
	if message == "" {
		message = "Manual emergency trigger"
	}

	event, err := h.companionService.TriggerEmergency(c.Request.Context(), input.UserID, message, location)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			log.WithError(err).Warn("Profile not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrConfiguration):
			log.WithError(err).Error("Profile has no dispatch targets")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "profile has no emergency contacts configured"})
		default:
			log.WithError(err).Error("Failed to trigger emergency")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	if event == nil {
		// Повторный триггер в окно дедупликации подавлен
		c.JSON(http.StatusOK, gin.H{"status": "dispatch already in flight"})
		return
	}

	c.JSON(http.StatusCreated, ModelToEmergencyEventResponse(event))
}

// @Summary Get an emergency event
// @Description Get an emergency event by ID with dispatch results and safe zone suggestions. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency event ID"
// @Success 200 {object} EmergencyEventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "getEmergency").WithField("id", id)

	event, err := h.companionService.GetEmergency(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to get emergency event from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyEventResponse(event))
}

// @Summary Resolve an emergency event
// @Description Move an emergency event into a terminal state (resolved or unresolved-timeout). Operator action. Requires API key.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency event ID"
// @Param resolution body ResolveEmergencyRequest true "Terminal status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid event ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found or already terminal"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/resolve [patch]
func (h *Handler) resolveEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return
	}
	log := h.logger.WithField("method", "resolveEmergency").WithField("id", id)

	var input ResolveEmergencyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.companionService.ResolveEmergency(c.Request.Context(), id, input.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid terminal status"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found or already terminal"})
		default:
			log.WithError(err).Error("Failed to resolve emergency event in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update user location
// @Description Refresh the user's current location in the safety profile. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationUpdateRequest true "Location update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationUpdateRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.companionService.UpdateLocation(c.Request.Context(), input.UserID, input.Latitude, input.Longitude); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		log.WithError(err).Error("Failed to update location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Create a safety profile
// @Description Onboard a user: create a safety profile with emergency contacts. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body CreateProfileRequest true "Profile creation request"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles [post]
func (h *Handler) createProfile(c *gin.Context) {
	var input CreateProfileRequest
	log := h.logger.WithField("method", "createProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToProfileModel(input)
	if err := h.profileService.CreateProfile(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile must have at least one emergency contact"})
			return
		}
		log.WithError(err).Error("Failed to create profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToProfileResponse(model))
}

// @Summary Get a safety profile
// @Description Get a safety profile by user ID. Requires API key.
// @Tags Profiles
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles/{id} [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getProfile").WithField("user_id", userID)

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		log.WithError(err).Error("Failed to get profile from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
