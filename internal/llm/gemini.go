package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Категории фильтров безопасности Gemini
var geminiSafetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float32 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient - шлюз к Gemini API (generateContent)
type GeminiClient struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewGeminiClient(cfg *config.Config, logger *logrus.Logger) *GeminiClient {
	return &GeminiClient{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.LLMTimeout,
		},
	}
}

// Complete выполняет один запрос generateContent. Системная инструкция
// уходит первой пользовательской репликой, история - в исходном порядке
// (assistant транслируется в роль model), новое сообщение - последним.
// Любой сбой или таймаут поднимается как service.ErrProvider.
func (c *GeminiClient) Complete(ctx context.Context, systemInstructions string, history []models.ConversationTurn, newMessage string, opts service.CompletionOptions) (string, error) {
	log := c.logger.WithField("gateway", "gemini")

	contents := make([]geminiContent, 0, len(history)+2)
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: systemInstructions}},
	})
	for _, turn := range history {
		role := "user"
		if turn.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Content}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: newMessage}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     opts.Temperature,
			TopK:            opts.TopK,
			TopP:            opts.TopP,
			MaxOutputTokens: opts.MaxOutputTokens,
		},
	}
	for _, category := range geminiSafetyCategories {
		reqBody.SafetySettings = append(reqBody.SafetySettings, geminiSafetySetting{
			Category:  category,
			Threshold: opts.SafetyThreshold,
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llm: failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.GeminiBaseURL, c.cfg.GeminiModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.GeminiAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		return "", fmt.Errorf("llm: gemini request failed: %v: %w", err, service.ErrProvider)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("Gemini returned status %d", resp.StatusCode)
		return "", fmt.Errorf("llm: gemini returned status %d: %w", resp.StatusCode, service.ErrProvider)
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("llm: failed to decode gemini response: %v: %w", err, service.ErrProvider)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("llm: gemini returned no candidates: %w", service.ErrProvider)
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
