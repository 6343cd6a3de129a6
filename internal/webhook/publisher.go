package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

const (
	webhookQueueKey = "incident_dispatch_events"
)

// IncidentEvent - E-FIR, отправляемый во внешнюю систему участка
type IncidentEvent struct {
	IncidentID     int64     `json:"incident_id"`
	AlertID        *int64    `json:"alert_id,omitempty"`
	AlertType      string    `json:"alert_type"`
	Station        string    `json:"station"`
	SenderUsername string    `json:"sender_username"`
	Location       string    `json:"location"`
	Details        string    `json:"details"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewIncidentEvent собирает событие из сохраненных тревоги и инцидента
func NewIncidentEvent(alert *models.Alert, incident *models.Incident) IncidentEvent {
	return IncidentEvent{
		IncidentID:     incident.ID,
		AlertID:        incident.AlertID,
		AlertType:      alert.Type,
		Station:        incident.Station,
		SenderUsername: incident.SenderUsername,
		Location:       alert.Location,
		Details:        incident.Details,
		Timestamp:      incident.DateTime,
	}
}

// WebhookPublisher - интерфейс для постановки E-FIR в очередь доставки
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

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает с хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
