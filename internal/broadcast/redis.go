package broadcast

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisPublisher публикует сообщения топиков в каналы Redis <prefix><topic>
type RedisPublisher struct {
	client *redis.Client
	prefix string
}

func NewRedisPublisher(client *redis.Client, prefix string) *RedisPublisher {
	return &RedisPublisher{client: client, prefix: prefix}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) error {
	data, err := encode(topic, payload)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.prefix+topic, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Relay пересылает сообщения из каналов Redis в локальный хаб,
// чтобы подписчики любого экземпляра получали все события
type Relay struct {
	client *redis.Client
	prefix string
	hub    *Hub
	logger *logrus.Logger
}

func NewRelay(client *redis.Client, prefix string, hub *Hub, logger *logrus.Logger) *Relay {
	return &Relay{client: client, prefix: prefix, hub: hub, logger: logger}
}

// Start запускает пересылку в горутине
func (r *Relay) Start(ctx context.Context) {
	go r.run(ctx)
}

func (r *Relay) run(ctx context.Context) {
	log := r.logger.WithFields(logrus.Fields{"component": "relay", "pattern": r.prefix + "*"})

	pubsub := r.client.PSubscribe(ctx, r.prefix+"*")
	defer pubsub.Close()
	log.Info("Redis relay started")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("Redis relay stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				log.Warn("Redis relay channel closed")
				return
			}
			topic := strings.TrimPrefix(msg.Channel, r.prefix)
			if err := r.hub.Deliver(ctx, topic, []byte(msg.Payload)); err != nil {
				log.WithError(err).WithField("topic", topic).Warn("Failed to relay message to hub")
			}
		}
	}
}
