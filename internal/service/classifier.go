package service

import (
	"strings"
	"unicode"

	"github.com/shenikar/travel_guardian_system/internal/models"
)

// distressPhrases - фиксированный набор фраз-сигналов бедствия
var distressPhrases = []string{
	"help me",
	"i'm scared",
	"emergency",
	"sos",
}

// ClassifyEmergency проверяет реплику пользователя и ответ модели на признаки
// тревоги. Проверки выполняются в жестком порядке приоритета, первая
// сработавшая выигрывает:
//  1. ключевое слово безопасности в сообщении пользователя (целое слово,
//     без учета регистра);
//  2. фраза бедствия в сообщении пользователя;
//  3. маркер активации в ответе модели.
//
// Сигнал самого пользователя важнее вывода модели: пользователь может
// принудительно включить режим тревоги, даже если модель не выдала маркер.
// Функция чистая и детерминированная: никаких сетевых вызовов и состояния.
func ClassifyEmergency(profile *models.UserSafetyProfile, userMessage, modelReply string) models.EmergencyDecision {
	if profile.SafetyKeyword != "" && containsWholeWord(userMessage, profile.SafetyKeyword) {
		return models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceKeyword}
	}

	loweredMsg := strings.ToLower(userMessage)
	for _, phrase := range distressPhrases {
		if strings.Contains(loweredMsg, phrase) {
			return models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourcePhrase}
		}
	}

	if strings.Contains(modelReply, EmergencyMarker) {
		return models.EmergencyDecision{IsEmergency: true, Source: models.TriggerSourceModelMarker}
	}

	return models.EmergencyDecision{IsEmergency: false}
}

// containsWholeWord проверяет вхождение word в text как целого слова,
// без учета регистра. Границей слова считается любой символ, не являющийся
// буквой или цифрой, а также начало/конец строки.
func containsWholeWord(text, word string) bool {
	lowText := strings.ToLower(text)
	lowWord := strings.ToLower(word)
	if lowWord == "" {
		return false
	}

	for from := 0; ; {
		idx := strings.Index(lowText[from:], lowWord)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(lowWord)

		if isWordBoundary(lowText, start-1) && isWordBoundary(lowText, end) {
			return true
		}
		from = start + 1
	}
}

func isWordBoundary(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
