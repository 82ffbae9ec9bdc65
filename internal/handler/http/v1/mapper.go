package v1

import (
	"math"

	"github.com/shenikar/travel_guardian_system/internal/models"
)

// DTOToProfileModel преобразует DTO онбординга в доменную модель
func DTOToProfileModel(dto CreateProfileRequest) *models.UserSafetyProfile {
	profile := &models.UserSafetyProfile{
		UserID:            dto.UserID,
		Name:              dto.Name,
		SafetyKeyword:     dto.SafetyKeyword,
		PreferredLanguage: dto.PreferredLanguage,
	}
	for _, c := range dto.EmergencyContacts {
		profile.EmergencyContacts = append(profile.EmergencyContacts, models.EmergencyContact{
			Name:     c.Name,
			Phone:    c.Phone,
			Relation: c.Relation,
			Priority: c.Priority,
		})
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		profile.CurrentLocation = &models.Location{Lat: *dto.Latitude, Lng: *dto.Longitude}
	}
	return profile
}

// ModelToProfileResponse преобразует профиль в DTO для ответа
func ModelToProfileResponse(model *models.UserSafetyProfile) *ProfileResponse {
	resp := &ProfileResponse{
		UserID:            model.UserID,
		Name:              model.Name,
		SafetyKeyword:     model.SafetyKeyword,
		PreferredLanguage: model.PreferredLanguage,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
	for _, c := range model.EmergencyContacts {
		resp.EmergencyContacts = append(resp.EmergencyContacts, EmergencyContactRequest{
			Name:     c.Name,
			Phone:    c.Phone,
			Relation: c.Relation,
			Priority: c.Priority,
		})
	}
	if model.CurrentLocation != nil {
		resp.Latitude = &model.CurrentLocation.Lat
		resp.Longitude = &model.CurrentLocation.Lng
	}
	return resp
}

// DTOToHistory преобразует входящую историю в доменные реплики
func DTOToHistory(turns []ConversationTurnIn) []models.ConversationTurn {
	history := make([]models.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		history = append(history, models.ConversationTurn{
			Role:    t.Role,
			Content: t.Content,
		})
	}
	return history
}

// ModelToEmergencyEventResponse преобразует экстренное событие в DTO для ответа
func ModelToEmergencyEventResponse(event *models.EmergencyEvent) *EmergencyEventResponse {
	if event == nil {
		return nil
	}
	resp := &EmergencyEventResponse{
		ID:                  event.ID,
		UserID:              event.UserID,
		TriggeredAt:         event.TriggeredAt,
		TriggerSource:       event.TriggerSource,
		OriginatingMessage:  event.OriginatingMessage,
		Status:              event.Status,
		DispatchResults:     make([]DispatchResultResponse, 0, len(event.DispatchResults)),
		SafeZoneSuggestions: make([]RankedSafeZoneResponse, 0, len(event.SafeZoneSuggestions)),
	}
	if event.Location != nil {
		resp.Latitude = &event.Location.Lat
		resp.Longitude = &event.Location.Lng
	}
	for _, r := range event.DispatchResults {
		resp.DispatchResults = append(resp.DispatchResults, DispatchResultResponse{
			Channel:     r.Channel,
			TargetName:  r.TargetName,
			AttemptedAt: r.AttemptedAt,
			Outcome:     r.Outcome,
			RetryCount:  r.RetryCount,
		})
	}
	for _, z := range event.SafeZoneSuggestions {
		resp.SafeZoneSuggestions = append(resp.SafeZoneSuggestions, rankedZoneResponse(z, true))
	}
	return resp
}

// ModelsToSafeZoneResponses преобразует срез ранжированных зон в срез DTO.
// ranked управляет наличием дистанции в ответе: без опорной точки зоны
// отдаются без нее.
func ModelsToSafeZoneResponses(zones []models.RankedSafeZone, ranked bool) []RankedSafeZoneResponse {
	responses := make([]RankedSafeZoneResponse, 0, len(zones))
	for _, z := range zones {
		responses = append(responses, rankedZoneResponse(z, ranked))
	}
	return responses
}

func rankedZoneResponse(zone models.RankedSafeZone, ranked bool) RankedSafeZoneResponse {
	resp := RankedSafeZoneResponse{
		ID:              zone.ID,
		Name:            zone.Name,
		Category:        zone.Category,
		Latitude:        zone.Location.Lat,
		Longitude:       zone.Location.Lng,
		Address:         zone.Address,
		Phone:           zone.Phone,
		OpenHours:       zone.OpenHours,
		Verification:    zone.Verification,
		BaseSafetyScore: zone.BaseSafetyScore,
	}
	if ranked {
		// В ответе дистанция округляется до 0.1 км, ранжирование
		// выполняется по неокругленному значению
		rounded := math.Round(zone.DistanceKm*10) / 10
		resp.DistanceKm = &rounded
	}
	return resp
}
