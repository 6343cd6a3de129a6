package service

import (
	"fmt"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// IncidentGenerator формирует E-FIR по сохраненной тревоге
type IncidentGenerator struct {
	stations *geo.Directory
	now      func() time.Time
}

func NewIncidentGenerator(stations *geo.Directory) *IncidentGenerator {
	return &IncidentGenerator{
		stations: stations,
		now:      time.Now,
	}
}

// Generate не сохраняет результат, это делает вызывающий
func (g *IncidentGenerator) Generate(alert *models.Alert) (*models.Incident, error) {
	station, err := g.stations.NearestOrDefault(alert.Location, geo.DefaultStationName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	details := fmt.Sprintf("Auto-generated E-FIR for alert id: %d\nType: %s\nDetails: %s\nLocation: %s",
		alert.ID, alert.Type, alert.Details, alert.Location)

	alertID := alert.ID
	return &models.Incident{
		DateTime:       g.now(),
		Station:        station,
		Details:        details,
		AlertID:        &alertID,
		SenderUsername: alert.SenderUsername,
	}, nil
}
