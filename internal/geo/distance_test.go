package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][2]float64{
		{22.4865, 88.3136},
		{22.7100, 88.3200},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
		{0, 0},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, DistanceKm(a[0], a[1], b[0], b[1]), DistanceKm(b[0], b[1], a[0], a[1]))
		}
		assert.Zero(t, DistanceKm(a[0], a[1], a[0], a[1]))
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Один градус долготы на экваторе
	assert.InDelta(t, 111.195, DistanceKm(0, 0, 0, 1), 0.001)
	// Лондон - Париж
	assert.InDelta(t, 343.5, DistanceKm(51.5074, -0.1278, 48.8566, 2.3522), 1.0)
}
