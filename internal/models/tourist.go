package models

// Tourist - отслеживаемый турист и его последняя известная позиция
type Tourist struct {
	ID        int64   `json:"id"`
	TouristID string  `json:"tourist_id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Password  string  `json:"-"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
