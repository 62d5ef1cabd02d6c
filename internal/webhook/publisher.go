package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

const (
	incidentQueueKey = "incident_events"
)

// IncidentEvent - структура данных вебхука о новом инциденте
type IncidentEvent struct {
	IncidentID uuid.UUID       `json:"incident_id"`
	Category   string          `json:"category"`
	Severity   models.Severity `json:"severity"`
	Summary    string          `json:"summary"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	Address    string          `json:"address,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event IncidentEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие о новом инциденте в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, incidentQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
