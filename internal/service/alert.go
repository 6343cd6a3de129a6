package service

//go:generate mockgen -source=alert.go -destination=mocks/mock_alert.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт хранения тревог
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context) ([]*models.Alert, error)
	ListBySenderUsername(ctx context.Context, username string) ([]*models.Alert, error)
}

// IncidentRepository определяет контракт хранения E-FIR
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	List(ctx context.Context) ([]*models.Incident, error)
	ListBySenderUsername(ctx context.Context, username string) ([]*models.Incident, error)
	GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
}

// AlertInput - проверенные на границе поля тревоги
type AlertInput struct {
	Type            string
	SenderUsername  string
	SenderTouristID *string
	Location        string
	Details         string
	// DateTime в формате ISO-8601; пустое или некорректное значение заменяется текущим временем
	DateTime string

	MissingName      *string
	MissingTouristID *string
	MissingLastSeen  *string
}

// SubmitResult - сохраненная тревога и, для crime/missing, сформированный E-FIR
type SubmitResult struct {
	Alert    *models.Alert
	Incident *models.Incident
}

// AlertService определяет контракт приема тревог и работы с E-FIR
type AlertService interface {
	Submit(ctx context.Context, input AlertInput) (*SubmitResult, error)
	ListAlerts(ctx context.Context, username string) ([]*models.Alert, error)
	ListIncidents(ctx context.Context, username string) ([]*models.Incident, error)
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	FileIncident(ctx context.Context, incident *models.Incident) error
}

type alertService struct {
	alerts     AlertRepository
	incidents  IncidentRepository
	generator  *IncidentGenerator
	notifier   notifier
	dispatcher webhook.WebhookPublisher
	logger     *logrus.Logger
	now        func() time.Time
}

func NewAlertService(
	alerts AlertRepository,
	incidents IncidentRepository,
	generator *IncidentGenerator,
	publisher Publisher,
	dispatcher webhook.WebhookPublisher,
	logger *logrus.Logger,
) AlertService {
	return &alertService{
		alerts:     alerts,
		incidents:  incidents,
		generator:  generator,
		notifier:   notifier{publisher: publisher, logger: logger},
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Submit сохраняет тревогу и при необходимости формирует E-FIR.
// Уже выполненные шаги при сбое не откатываются.
func (s *alertService) Submit(ctx context.Context, input AlertInput) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "Submit",
		"type":    input.Type,
		"sender":  input.SenderUsername,
	})
	log.Info("Submitting alert")

	alert := &models.Alert{
		Type:            input.Type,
		SenderUsername:  input.SenderUsername,
		SenderTouristID: input.SenderTouristID,
		DateTime:        ParseAlertTime(input.DateTime, s.now()),
		Location:        input.Location,
		Details:         input.Details,
	}
	if alert.IsMissing() {
		alert.MissingName = stringOrEmpty(input.MissingName)
		alert.MissingTouristID = stringOrEmpty(input.MissingTouristID)
		alert.MissingLastSeen = stringOrEmpty(input.MissingLastSeen)
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		metrics.SubmissionFailures.Inc()
		return nil, fmt.Errorf("%w: could not save alert: %w", ErrSubmission, err)
	}
	metrics.AlertsSubmitted.WithLabelValues(strings.ToLower(alert.Type)).Inc()
	s.notifier.notify(ctx, TopicAlerts, alert)

	result := &SubmitResult{Alert: alert}
	if !alert.RequiresIncident() {
		log.WithField("alert_id", alert.ID).Info("Alert recorded")
		return result, nil
	}

	incident, err := s.generator.Generate(alert)
	if err != nil {
		log.WithError(err).Error("Failed to generate incident for alert")
		metrics.SubmissionFailures.Inc()
		return nil, fmt.Errorf("%w: could not generate incident: %w", ErrSubmission, err)
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		metrics.SubmissionFailures.Inc()
		return nil, fmt.Errorf("%w: could not save incident: %w", ErrSubmission, err)
	}
	metrics.IncidentsGenerated.WithLabelValues(incident.Station).Inc()
	s.notifier.notify(ctx, TopicIncidents, incident)
	s.dispatch(ctx, alert, incident, log)

	result.Incident = incident
	log.WithFields(logrus.Fields{
		"alert_id":    alert.ID,
		"incident_id": incident.ID,
		"station":     incident.Station,
	}).Info("Alert recorded and incident generated")
	return result, nil
}

// dispatch ставит E-FIR в очередь доставки участку; ошибка не влияет на ответ
func (s *alertService) dispatch(ctx context.Context, alert *models.Alert, incident *models.Incident, log *logrus.Entry) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, webhook.NewIncidentEvent(alert, incident)); err != nil {
		log.WithError(err).Warn("Failed to enqueue incident for station dispatch")
	}
}

// ListAlerts возвращает все тревоги или только тревоги указанного отправителя
func (s *alertService) ListAlerts(ctx context.Context, username string) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ListAlerts",
		"username": username,
	})

	var (
		alerts []*models.Alert
		err    error
	)
	if strings.TrimSpace(username) == "" {
		alerts, err = s.alerts.List(ctx)
	} else {
		alerts, err = s.alerts.ListBySenderUsername(ctx, username)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Debug("Alerts listed successfully")
	return alerts, nil
}

// ListIncidents возвращает все E-FIR или только E-FIR указанного отправителя
func (s *alertService) ListIncidents(ctx context.Context, username string) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ListIncidents",
		"username": username,
	})

	var (
		incidents []*models.Incident
		err       error
	)
	if strings.TrimSpace(username) == "" {
		incidents, err = s.incidents.List(ctx)
	} else {
		incidents, err = s.incidents.ListBySenderUsername(ctx, username)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// GetIncident получает E-FIR по ID: сначала из кеша, затем из бд
func (s *alertService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "alert",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.incidents.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("Failed to get incident from repository")
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	// E-FIR неизменяем, поэтому кеш не требует инвалидации
	if err := s.incidents.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// FileIncident сохраняет E-FIR, заведенный вручную, и рассылает его
func (s *alertService) FileIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "FileIncident",
		"station": incident.Station,
	})
	log.Info("Filing incident")

	if incident.DateTime.IsZero() {
		incident.DateTime = s.now()
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not file incident: %w", err)
	}
	metrics.IncidentsGenerated.WithLabelValues(incident.Station).Inc()
	s.notifier.notify(ctx, TopicIncidents, incident)

	log.WithField("incident_id", incident.ID).Info("Incident filed successfully")
	return nil
}

var alertTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseAlertTime разбирает время тревоги; при ошибке возвращает fallback.
// Время без зоны считается UTC.
func ParseAlertTime(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	for _, layout := range alertTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}

func stringOrEmpty(v *string) *string {
	s := ""
	if v != nil {
		s = *v
	}
	return &s
}
