package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/models"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

// OpenAIClient - шлюз к OpenAI-совместимому chat completions API
type OpenAIClient struct {
	cfg    *config.Config
	logger *logrus.Logger
	client *openai.Client
}

func NewOpenAIClient(cfg *config.Config, logger *logrus.Logger) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIClient{
		cfg:    cfg,
		logger: logger,
		client: openai.NewClientWithConfig(clientCfg),
	}
}

// Complete выполняет один запрос chat completions: системная инструкция,
// история в исходном порядке, затем новое сообщение. Сбой или таймаут
// поднимается как service.ErrProvider.
func (c *OpenAIClient) Complete(ctx context.Context, systemInstructions string, history []models.ConversationTurn, newMessage string, opts service.CompletionOptions) (string, error) {
	log := c.logger.WithField("gateway", "openai")

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemInstructions,
	})
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == models.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: newMessage,
	})

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.LLMTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       c.cfg.OpenAIModel,
		Messages:    messages,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxOutputTokens,
	})
	if err != nil {
		log.WithError(err).Error("OpenAI request failed")
		return "", fmt.Errorf("llm: openai request failed: %v: %w", err, service.ErrProvider)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: openai returned no choices: %w", service.ErrProvider)
	}

	return resp.Choices[0].Message.Content, nil
}
