package models

import (
	"strings"
	"time"
)

const (
	AlertTypeDistress = "distress"
	AlertTypeCrime    = "crime"
	AlertTypeMissing  = "missing"
)

// Alert - сообщение о происшествии, отправленное туристом
type Alert struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"`
	SenderUsername  string    `json:"sender_username"`
	SenderTouristID *string   `json:"sender_tourist_id"`
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	Details         string    `json:"details"`

	// Заполняются только для тревог типа missing
	MissingName      *string `json:"missing_name,omitempty"`
	MissingTouristID *string `json:"missing_tourist_id,omitempty"`
	MissingLastSeen  *string `json:"missing_last_seen,omitempty"`
}

// IsMissing сообщает, что тревога о пропавшем человеке
func (a *Alert) IsMissing() bool {
	return strings.EqualFold(a.Type, AlertTypeMissing)
}

// RequiresIncident сообщает, нужно ли автоматически формировать E-FIR
func (a *Alert) RequiresIncident() bool {
	return strings.EqualFold(a.Type, AlertTypeCrime) || a.IsMissing()
}
