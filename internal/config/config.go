package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// LLM Config
	LLMProvider   string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`

	// Alert Config
	SMSGatewayURL     string        `env:"SMS_GATEWAY_URL"`
	LocalServicesURL  string        `env:"LOCAL_SERVICES_URL"`
	LocalServicesID   string        `env:"LOCAL_SERVICES_ID" envDefault:"local-emergency-services"`
	LocalServicesName string        `env:"LOCAL_SERVICES_NAME" envDefault:"Local Emergency Services"`
	AlertSecret       string        `env:"ALERT_SECRET"`
	AlertTimeout      time.Duration `env:"ALERT_TIMEOUT" envDefault:"5s"`
	AlertMaxRetries   int           `env:"ALERT_MAX_RETRIES" envDefault:"3"`
	AlertBaseDelay    time.Duration `env:"ALERT_BASE_DELAY" envDefault:"500ms"`

	// Safe Zone Config
	MaxSafeZoneSuggestions int `env:"MAX_SAFE_ZONE_SUGGESTIONS" envDefault:"3"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		LLMProvider:            getEnv("LLM_PROVIDER", "gemini"),
		LLMTimeout:             getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-pro"),
		GeminiBaseURL:          getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:          os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o"),
		SMSGatewayURL:          os.Getenv("SMS_GATEWAY_URL"),
		LocalServicesURL:       os.Getenv("LOCAL_SERVICES_URL"),
		LocalServicesID:        getEnv("LOCAL_SERVICES_ID", "local-emergency-services"),
		LocalServicesName:      getEnv("LOCAL_SERVICES_NAME", "Local Emergency Services"),
		AlertSecret:            os.Getenv("ALERT_SECRET"),
		AlertTimeout:           getEnvAsDuration("ALERT_TIMEOUT", 5*time.Second),
		AlertMaxRetries:        getEnvAsInt("ALERT_MAX_RETRIES", 3),
		AlertBaseDelay:         getEnvAsDuration("ALERT_BASE_DELAY", 500*time.Millisecond),
		MaxSafeZoneSuggestions: getEnvAsInt("MAX_SAFE_ZONE_SUGGESTIONS", 3),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
