package models

import (
	"time"
)

// Incident - электронный FIR, сформированный по тревоге или заведённый вручную
type Incident struct {
	ID             int64     `json:"id"`
	DateTime       time.Time `json:"date_time"`
	Station        string    `json:"station"`
	Details        string    `json:"details"`
	AlertID        *int64    `json:"alert_id,omitempty"`
	SenderUsername string    `json:"sender_username"`
}
