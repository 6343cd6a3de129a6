package v1

import (
	"time"
)

// LoginRequest DTO для входа или регистрации туриста
// @Description DTO для входа или регистрации туриста. name и tourist_id нужны только новому пользователю
type LoginRequest struct {
	Username  string   `json:"username" validate:"required"`
	Password  string   `json:"password" validate:"required"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Name      *string  `json:"name,omitempty"`
	TouristID *string  `json:"tourist_id,omitempty"`
}

// CreateTouristRequest DTO для прямого создания туриста
// @Description DTO для прямого создания туриста
type CreateTouristRequest struct {
	TouristID string  `json:"tourist_id" validate:"required,max=64"`
	Name      string  `json:"name" validate:"required,max=255"`
	Username  string  `json:"username" validate:"required,max=255"`
	Password  string  `json:"password" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// UpdateLocationRequest DTO для обновления координат
// @Description DTO для обновления координат
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// TouristResponse DTO для ответа с информацией о туристе (без пароля)
// @Description DTO для ответа с информацией о туристе
type TouristResponse struct {
	ID        int64   `json:"id"`
	TouristID string  `json:"tourist_id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateAlertRequest DTO для отправки тревоги
// @Description DTO для отправки тревоги. Поля missing_* учитываются только для type=missing
type CreateAlertRequest struct {
	Type            string  `json:"type" validate:"required,max=32"`
	SenderUsername  string  `json:"sender_username" validate:"required"`
	SenderTouristID *string `json:"sender_tourist_id,omitempty"`
	DateTime        string  `json:"date_time,omitempty"`
	Location        string  `json:"location,omitempty"`
	Details         string  `json:"details,omitempty"`

	MissingName      *string `json:"missing_name,omitempty"`
	MissingTouristID *string `json:"missing_tourist_id,omitempty"`
	MissingLastSeen  *string `json:"missing_last_seen,omitempty"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"`
	SenderUsername  string    `json:"sender_username"`
	SenderTouristID *string   `json:"sender_tourist_id"`
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	Details         string    `json:"details"`

	MissingName      *string `json:"missing_name,omitempty"`
	MissingTouristID *string `json:"missing_tourist_id,omitempty"`
	MissingLastSeen  *string `json:"missing_last_seen,omitempty"`
}

// CreateIncidentRequest DTO для ручного заведения E-FIR
// @Description DTO для ручного заведения E-FIR
type CreateIncidentRequest struct {
	Station        string `json:"station" validate:"required,max=255"`
	Details        string `json:"details,omitempty"`
	AlertID        *int64 `json:"alert_id,omitempty" validate:"omitempty,gt=0"`
	SenderUsername string `json:"sender_username,omitempty"`
	DateTime       string `json:"date_time,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об E-FIR
// @Description DTO для ответа с информацией об E-FIR
type IncidentResponse struct {
	ID             int64     `json:"id"`
	DateTime       time.Time `json:"date_time"`
	Station        string    `json:"station"`
	Details        string    `json:"details"`
	AlertID        *int64    `json:"alert_id,omitempty"`
	SenderUsername string    `json:"sender_username"`
}

// SubmitAlertResponse DTO для ответа на отправку тревоги; incident равен null для distress
// @Description DTO для ответа на отправку тревоги
type SubmitAlertResponse struct {
	Alert    *AlertResponse    `json:"alert"`
	Incident *IncidentResponse `json:"incident"`
}
