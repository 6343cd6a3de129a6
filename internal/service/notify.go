package service

//go:generate mockgen -source=notify.go -destination=mocks/mock_notify.go -package=mocks

import (
	"context"

	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

// Топики рассылки
const (
	TopicLocations = "locations"
	TopicAlerts    = "alerts"
	TopicIncidents = "incidents"
)

// Publisher - канал рассылки изменений подписчикам
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// notifier публикует без влияния на результат запроса: ошибка логируется и считается в метриках
type notifier struct {
	publisher Publisher
	logger    *logrus.Logger
}

func (n notifier) notify(ctx context.Context, topic string, payload any) {
	if err := n.publisher.Publish(ctx, topic, payload); err != nil {
		metrics.PublishFailures.WithLabelValues(topic).Inc()
		n.logger.WithError(err).WithField("topic", topic).Warn("Failed to publish update")
	}
}
