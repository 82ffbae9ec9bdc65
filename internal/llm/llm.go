package llm

import (
	"fmt"

	"github.com/shenikar/travel_guardian_system/internal/config"
	"github.com/shenikar/travel_guardian_system/internal/service"
	"github.com/sirupsen/logrus"
)

// NewGateway создает шлюз языковой модели по настроенному провайдеру
func NewGateway(cfg *config.Config, logger *logrus.Logger) (service.LanguageModelGateway, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return NewGeminiClient(cfg, logger), nil
	case "openai":
		return NewOpenAIClient(cfg, logger), nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.LLMProvider)
	}
}
