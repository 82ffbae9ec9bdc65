package service

import (
	"testing"

	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func testProfile(keyword string) *models.UserSafetyProfile {
	return &models.UserSafetyProfile{
		UserID:        "user-1",
		Name:          "Sarah",
		SafetyKeyword: keyword,
	}
}

func TestClassifyEmergency_Keyword_WholeWord(t *testing.T) {
	profile := testProfile("pineapple")

	tests := []struct {
		name      string
		message   string
		emergency bool
	}{
		{"слово целиком", "pineapple", true},
		{"внутри предложения", "I love pineapple juice", true},
		{"другой регистр", "PINEAPPLE!", true},
		{"с пунктуацией вокруг", "ok, pineapple.", true},
		{"подстрока не считается", "I love pineapples", false},
		{"склейка слева не считается", "mypineapple", false},
		{"слова нет", "everything is fine", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ClassifyEmergency(profile, tt.message, "")
			assert.Equal(t, tt.emergency, decision.IsEmergency)
			if tt.emergency {
				assert.Equal(t, models.TriggerSourceKeyword, decision.Source)
			}
		})
	}
}

func TestClassifyEmergency_DistressPhrases(t *testing.T) {
	profile := testProfile("pineapple")

	tests := []struct {
		name    string
		message string
	}{
		{"help me", "Please help me, I am lost"},
		{"i'm scared", "I'm scared of this street"},
		{"emergency", "this is an EMERGENCY"},
		{"sos", "sos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ClassifyEmergency(profile, tt.message, "")
			assert.True(t, decision.IsEmergency)
			assert.Equal(t, models.TriggerSourcePhrase, decision.Source)
		})
	}
}

func TestClassifyEmergency_ModelMarker(t *testing.T) {
	profile := testProfile("pineapple")
	reply := EmergencyMarker + " I have notified your emergency contacts."

	decision := ClassifyEmergency(profile, "where is the nearest cafe?", reply)

	assert.True(t, decision.IsEmergency)
	assert.Equal(t, models.TriggerSourceModelMarker, decision.Source)
}

func TestClassifyEmergency_Precedence_KeywordOverPhraseAndMarker(t *testing.T) {
	// Сообщение содержит и ключевое слово, и фразу бедствия,
	// а ответ модели - маркер. Побеждает ключевое слово.
	profile := testProfile("pineapple")

	decision := ClassifyEmergency(profile, "pineapple! help me!", EmergencyMarker)

	assert.True(t, decision.IsEmergency)
	assert.Equal(t, models.TriggerSourceKeyword, decision.Source)
}

func TestClassifyEmergency_Precedence_PhraseOverMarker(t *testing.T) {
	profile := testProfile("pineapple")

	decision := ClassifyEmergency(profile, "help me please", EmergencyMarker)

	assert.True(t, decision.IsEmergency)
	assert.Equal(t, models.TriggerSourcePhrase, decision.Source)
}

func TestClassifyEmergency_NoSignals(t *testing.T) {
	profile := testProfile("pineapple")

	decision := ClassifyEmergency(profile, "what time does the museum open?", "It opens at 9 AM.")

	assert.False(t, decision.IsEmergency)
	assert.Empty(t, decision.Source)
}

func TestClassifyEmergency_EmptyKeywordNeverMatches(t *testing.T) {
	profile := testProfile("")

	decision := ClassifyEmergency(profile, "any message at all", "")

	assert.False(t, decision.IsEmergency)
}
