package service

//go:generate mockgen -source=tracking.go -destination=mocks/mock_tracking.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// TouristRepository определяет контракт хранения туристов.
// GetByID и GetByUsername возвращают ошибку, оборачивающую ErrNotFound, если записи нет.
type TouristRepository interface {
	Create(ctx context.Context, tourist *models.Tourist) error
	Update(ctx context.Context, tourist *models.Tourist) error
	GetByID(ctx context.Context, id int64) (*models.Tourist, error)
	GetByUsername(ctx context.Context, username string) (*models.Tourist, error)
	List(ctx context.Context) ([]*models.Tourist, error)
}

// LoginInput - данные входа или регистрации
type LoginInput struct {
	Username  string
	Password  string
	Latitude  *float64
	Longitude *float64
	// Name и TouristID обязательны только для нового пользователя
	Name      *string
	TouristID *string
}

// TrackingService определяет контракт отслеживания туристов
type TrackingService interface {
	LoginOrRegister(ctx context.Context, input LoginInput) (*models.Tourist, error)
	Register(ctx context.Context, tourist *models.Tourist) error
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
	AllLocations(ctx context.Context) ([]*models.Tourist, error)
	GetByUsername(ctx context.Context, username string) (*models.Tourist, error)
	BroadcastLocations(ctx context.Context)
	Seed(ctx context.Context, seeds []models.Tourist) error
}

type trackingService struct {
	repo     TouristRepository
	notifier notifier
	logger   *logrus.Logger
	// fixedIDs - туристы, чьи координаты не меняются при входе
	fixedIDs  map[string]struct{}
	userLocks *keyedMutex
	idLocks   *keyedMutex
}

func NewTrackingService(repo TouristRepository, publisher Publisher, logger *logrus.Logger, fixedTouristIDs []string) TrackingService {
	fixed := make(map[string]struct{}, len(fixedTouristIDs))
	for _, id := range fixedTouristIDs {
		fixed[id] = struct{}{}
	}

	return &trackingService{
		repo:      repo,
		notifier:  notifier{publisher: publisher, logger: logger},
		logger:    logger,
		fixedIDs:  fixed,
		userLocks: newKeyedMutex(),
		idLocks:   newKeyedMutex(),
	}
}

// LoginOrRegister входит существующим пользователем с обновлением позиции или регистрирует нового
func (s *trackingService) LoginOrRegister(ctx context.Context, input LoginInput) (*models.Tourist, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "tracking",
		"method":   "LoginOrRegister",
		"username": input.Username,
	})

	unlock := s.userLocks.Lock(input.Username)
	defer unlock()

	lat, lon := floatOrZero(input.Latitude), floatOrZero(input.Longitude)

	existing, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to get tourist by username")
		return nil, fmt.Errorf("service: could not look up tourist: %w", err)
	}

	if existing != nil {
		if existing.Password != input.Password {
			log.Warn("Wrong password")
			return nil, fmt.Errorf("service: wrong password for %q: %w", input.Username, ErrUnauthorized)
		}
		if _, fixed := s.fixedIDs[existing.TouristID]; fixed {
			log.WithField("tourist_id", existing.TouristID).Debug("Fixed-position tourist, location not updated")
			return existing, nil
		}

		updated, err := s.updateLocation(ctx, existing.ID, lat, lon)
		if err != nil {
			log.WithError(err).Error("Failed to update location on login")
			return nil, err
		}
		log.WithField("tourist_id", updated.TouristID).Info("Tourist logged in")
		return updated, nil
	}

	if isBlank(input.Name) || isBlank(input.TouristID) {
		log.Warn("Registration without name or tourist_id")
		return nil, fmt.Errorf("service: name and tourist_id required for new user: %w", ErrValidation)
	}

	tourist := &models.Tourist{
		TouristID: *input.TouristID,
		Name:      *input.Name,
		Username:  input.Username,
		Password:  input.Password,
		Latitude:  lat,
		Longitude: lon,
	}
	if err := s.repo.Create(ctx, tourist); err != nil {
		log.WithError(err).Error("Failed to create tourist in repository")
		return nil, fmt.Errorf("service: could not register tourist: %w", err)
	}
	s.BroadcastLocations(ctx)

	log.WithField("tourist_id", tourist.TouristID).Info("Tourist registered")
	return tourist, nil
}

// Register создает туриста напрямую, без проверки пароля
func (s *trackingService) Register(ctx context.Context, tourist *models.Tourist) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "tracking",
		"method":   "Register",
		"username": tourist.Username,
	})

	unlock := s.userLocks.Lock(tourist.Username)
	defer unlock()

	existing, err := s.repo.GetByUsername(ctx, tourist.Username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to get tourist by username")
		return fmt.Errorf("service: could not look up tourist: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("service: username %q: %w", tourist.Username, ErrConflict)
	}

	if err := s.repo.Create(ctx, tourist); err != nil {
		log.WithError(err).Error("Failed to create tourist in repository")
		return fmt.Errorf("service: could not register tourist: %w", err)
	}
	s.BroadcastLocations(ctx)

	log.WithField("id", tourist.ID).Info("Tourist created")
	return nil
}

// UpdateLocation обновляет координаты туриста по внутреннему ID
func (s *trackingService) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	_, err := s.updateLocation(ctx, id, lat, lon)
	return err
}

// updateLocation сериализует чтение-изменение-запись по ID туриста
func (s *trackingService) updateLocation(ctx context.Context, id int64, lat, lon float64) (*models.Tourist, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tracking",
		"method":  "UpdateLocation",
		"id":      id,
	})

	unlock := s.idLocks.Lock(strconv.FormatInt(id, 10))
	defer unlock()

	tourist, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("Failed to get tourist by id")
		}
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}

	tourist.Latitude = lat
	tourist.Longitude = lon
	if err := s.repo.Update(ctx, tourist); err != nil {
		log.WithError(err).Error("Failed to update tourist in repository")
		return nil, fmt.Errorf("service: could not update location: %w", err)
	}
	metrics.LocationUpdates.Inc()
	s.BroadcastLocations(ctx)

	log.Debug("Location updated")
	return tourist, nil
}

// AllLocations возвращает всех туристов с последними координатами
func (s *trackingService) AllLocations(ctx context.Context) ([]*models.Tourist, error) {
	tourists, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "AllLocations").Error("Failed to list tourists")
		return nil, fmt.Errorf("service: could not list tourists: %w", err)
	}
	return tourists, nil
}

func (s *trackingService) GetByUsername(ctx context.Context, username string) (*models.Tourist, error) {
	tourist, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service: could not get tourist: %w", err)
	}
	return tourist, nil
}

// BroadcastLocations рассылает полный снимок позиций в топик locations
func (s *trackingService) BroadcastLocations(ctx context.Context) {
	tourists, err := s.repo.List(ctx)
	if err != nil {
		metrics.PublishFailures.WithLabelValues(TopicLocations).Inc()
		s.logger.WithError(err).Warn("Failed to load tourists for broadcast")
		return
	}
	s.notifier.notify(ctx, TopicLocations, tourists)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func isBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}
