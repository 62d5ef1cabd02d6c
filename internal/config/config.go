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

	// Внешние API
	GoogleMapsAPIKey string `env:"GOOGLE_MAPS_API_KEY"`
	AIAPIKey         string `env:"AI_API_KEY"`
	AIModel          string `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	PerplexityAPIKey string `env:"PERPLEXITY_API_KEY"`

	// ElevenLabs: синтез речи и исходящие звонки агента
	ElevenLabsAPIKey        string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID       string `env:"ELEVENLABS_VOICE_ID"`
	ElevenLabsAgentID       string `env:"ELEVENLABS_AGENT_ID"`
	ElevenLabsPhoneNumberID string `env:"ELEVENLABS_PHONE_NUMBER_ID"`

	// Анализ маршрутов
	RouteBufferMeters  int `env:"ROUTE_BUFFER_METERS" envDefault:"300"`
	DistanceWorkers    int `env:"DISTANCE_WORKERS" envDefault:"4"`
	RouteIncidentLimit int `env:"ROUTE_INCIDENT_LIMIT" envDefault:"200"`
	ImpactRadiusMeters int `env:"IMPACT_RADIUS_METERS" envDefault:"5000"`
	TrendIncidentLimit int `env:"TREND_INCIDENT_LIMIT" envDefault:"100"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

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
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		GoogleMapsAPIKey:        os.Getenv("GOOGLE_MAPS_API_KEY"),
		AIAPIKey:                os.Getenv("AI_API_KEY"),
		AIModel:                 getEnv("AI_MODEL", "gpt-4o-mini"),
		PerplexityAPIKey:        os.Getenv("PERPLEXITY_API_KEY"),
		ElevenLabsAPIKey:        os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID:       os.Getenv("ELEVENLABS_VOICE_ID"),
		ElevenLabsAgentID:       os.Getenv("ELEVENLABS_AGENT_ID"),
		ElevenLabsPhoneNumberID: os.Getenv("ELEVENLABS_PHONE_NUMBER_ID"),
		RouteBufferMeters:       getEnvAsInt("ROUTE_BUFFER_METERS", 300),
		DistanceWorkers:         getEnvAsInt("DISTANCE_WORKERS", 4),
		RouteIncidentLimit:      getEnvAsInt("ROUTE_INCIDENT_LIMIT", 200),
		ImpactRadiusMeters:      getEnvAsInt("IMPACT_RADIUS_METERS", 5000),
		TrendIncidentLimit:      getEnvAsInt("TREND_INCIDENT_LIMIT", 100),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
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
	if cfg.GoogleMapsAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY environment variable is required")
	}
	if cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY environment variable is required")
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
