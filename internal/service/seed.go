package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DemoTourists - демо-туристы, координаты которых восстанавливаются при каждом запуске
func DemoTourists() []models.Tourist {
	return []models.Tourist{
		{TouristID: "T002", Name: "Aritra Banerjee", Username: "aritra123", Password: "ari123", Latitude: 22.4865, Longitude: 88.3136},
		{TouristID: "T003", Name: "Mehul Roy", Username: "mehul123", Password: "meh123", Latitude: 22.4843, Longitude: 88.3399},
		{TouristID: "T004", Name: "Nikunj Agarwal", Username: "nikunj123", Password: "nik123", Latitude: 22.7100, Longitude: 88.3200},
		{TouristID: "T005", Name: "Ishita Mandal", Username: "ishita123", Password: "ish123", Latitude: 22.516525, Longitude: 88.418213},
		{TouristID: "T006", Name: "Kaushik Harsha", Username: "kaushik123", Password: "kau123", Latitude: 22.5667, Longitude: 88.3475},
	}
}

// Seed создает отсутствующих туристов, возвращает существующим исходные координаты
// и рассылает стартовый снимок позиций
func (s *trackingService) Seed(ctx context.Context, seeds []models.Tourist) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "Seed",
	})

	created, updated := 0, 0
	for i := range seeds {
		seed := seeds[i]

		existing, err := s.repo.GetByUsername(ctx, seed.Username)
		switch {
		case errors.Is(err, ErrNotFound):
			if err := s.repo.Create(ctx, &seed); err != nil {
				return fmt.Errorf("service: could not seed tourist %q: %w", seed.Username, err)
			}
			created++
		case err != nil:
			return fmt.Errorf("service: could not look up seed tourist %q: %w", seed.Username, err)
		default:
			existing.Latitude = seed.Latitude
			existing.Longitude = seed.Longitude
			if err := s.repo.Update(ctx, existing); err != nil {
				return fmt.Errorf("service: could not reset seed tourist %q: %w", seed.Username, err)
			}
			updated++
		}
	}

	log.WithField("created", created).WithField("updated", updated).Info("Seed tourists applied")
	s.BroadcastLocations(ctx)
	return nil
}
