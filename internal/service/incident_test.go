package service_test

import (
	"testing"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/geo"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentGenerator_Generate(t *testing.T) {
	generator := service.NewIncidentGenerator(geo.NewDirectory(geo.DefaultStations()))
	alertTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	alert := &models.Alert{
		ID:             42,
		Type:           "crime",
		SenderUsername: "alice",
		DateTime:       alertTime,
		Location:       "22.516525, 88.418213",
		Details:        "pickpocket",
	}

	before := time.Now()
	incident, err := generator.Generate(alert)

	require.NoError(t, err)
	assert.Equal(t, "Anandapur Police Station", incident.Station)
	assert.Equal(t, "alice", incident.SenderUsername)
	require.NotNil(t, incident.AlertID)
	assert.Equal(t, int64(42), *incident.AlertID)
	assert.Zero(t, incident.ID)
	// Время формирования, а не время тревоги
	assert.False(t, incident.DateTime.Before(before))
	assert.Equal(t,
		"Auto-generated E-FIR for alert id: 42\nType: crime\nDetails: pickpocket\nLocation: 22.516525, 88.418213",
		incident.Details)
}

func TestIncidentGenerator_EmptyFields(t *testing.T) {
	generator := service.NewIncidentGenerator(geo.NewDirectory(geo.DefaultStations()))

	incident, err := generator.Generate(&models.Alert{ID: 3, Type: "missing"})

	require.NoError(t, err)
	assert.Equal(t, geo.DefaultStationName, incident.Station)
	assert.Equal(t, "Auto-generated E-FIR for alert id: 3\nType: missing\nDetails: \nLocation: ", incident.Details)
}

func TestParseAlertTime(t *testing.T) {
	fallback := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]time.Time{
		"2025-09-20T10:15:30Z":      time.Date(2025, 9, 20, 10, 15, 30, 0, time.UTC),
		"2025-09-20T10:15:30.5":     time.Date(2025, 9, 20, 10, 15, 30, 500_000_000, time.UTC),
		"2025-09-20T10:15":          time.Date(2025, 9, 20, 10, 15, 0, 0, time.UTC),
		"2025-09-20T10:15:30+05:30": time.Date(2025, 9, 20, 4, 45, 30, 0, time.UTC),
		"":                          fallback,
		"20/09/2025":                fallback,
		"2025-13-40T99:99:99":       fallback,
	}

	for raw, expected := range cases {
		assert.True(t, expected.Equal(service.ParseAlertTime(raw, fallback)), "input %q", raw)
	}
}
