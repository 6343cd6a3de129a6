package broadcast

import (
	"encoding/json"
	"fmt"
	"time"
)

// Envelope - сообщение, которое получают подписчики топика
type Envelope struct {
	Topic  string          `json:"topic"`
	Data   json.RawMessage `json:"data"`
	SentAt time.Time       `json:"sent_at"`
}

func encode(topic string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	msg, err := json.Marshal(Envelope{Topic: topic, Data: data, SentAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", topic, err)
	}
	return msg, nil
}
