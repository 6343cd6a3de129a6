package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/report"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	trackingService service.TrackingService
	alertService    service.AlertService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(trackingService service.TrackingService, alertService service.AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		trackingService: trackingService,
		alertService:    alertService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

func (h *Handler) requestLog(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":     method,
		"request_id": c.GetString(requestIDKey),
	})
}

// bind разбирает и проверяет тело запроса; при ошибке ответ уже записан
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-статус
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Request rejected by service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Debug("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		log.WithError(err).Error("Internal error")
		report.ReportError(err, map[string]string{
			"path":       c.FullPath(),
			"request_id": c.GetString(requestIDKey),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Login or register a tourist
// @Description Logs an existing tourist in and updates their position, or registers a new one (name and tourist_id required)
// @Tags Tracking
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login request"
// @Success 200 {object} TouristResponse
// @Failure 400 {object} map[string]string "Invalid request body or missing registration fields"
// @Failure 401 {object} map[string]string "Wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tracking/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.requestLog(c, "login")
	if !h.bind(c, log, &input) {
		return
	}

	tourist, err := h.trackingService.LoginOrRegister(c.Request.Context(), LoginRequestToInput(input))
	if err != nil {
		h.respondError(c, log.WithField("username", input.Username), err)
		return
	}
	c.JSON(http.StatusOK, ModelToTouristResponse(tourist))
}

// @Summary Create a tourist
// @Description Creates a tourist directly. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tourist body CreateTouristRequest true "Tourist creation request"
// @Success 201 {object} TouristResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Username or tourist_id already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists [post]
func (h *Handler) createTourist(c *gin.Context) {
	var input CreateTouristRequest
	log := h.requestLog(c, "createTourist")
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToTouristModel(input)
	if err := h.trackingService.Register(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToTouristResponse(model))
}

// @Summary Update tourist location
// @Description Updates coordinates of a tourist by internal ID and broadcasts the new snapshot
// @Tags Tourists
// @Accept json
// @Produce json
// @Param id path int true "Tourist ID"
// @Param location body UpdateLocationRequest true "New coordinates"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid ID or request body"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{id}/location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
		return
	}
	log := h.requestLog(c, "updateLocation").WithField("id", id)

	var input UpdateLocationRequest
	if !h.bind(c, log, &input) {
		return
	}

	if err := h.trackingService.UpdateLocation(c.Request.Context(), id, *input.Latitude, *input.Longitude); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List tourist locations
// @Description Returns all tourists with their last known coordinates
// @Tags Tourists
// @Produce json
// @Success 200 {array} TouristResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	log := h.requestLog(c, "listLocations")

	tourists, err := h.trackingService.AllLocations(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToTouristResponses(tourists))
}

// @Summary Get tourist by username
// @Tags Tourists
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} TouristResponse
// @Failure 400 {object} map[string]string "Missing username"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/by-username [get]
func (h *Handler) getTouristByUsername(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	log := h.requestLog(c, "getTouristByUsername").WithField("username", username)

	tourist, err := h.trackingService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTouristResponse(tourist))
}

// @Summary Submit an alert
// @Description Records an alert. crime and missing alerts also produce an E-FIR routed to the nearest station
// @Tags Alerts
// @Accept json
// @Produce json
// @Param alert body CreateAlertRequest true "Alert"
// @Success 201 {object} SubmitAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) submitAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.requestLog(c, "submitAlert")
	if !h.bind(c, log, &input) {
		return
	}

	result, err := h.alertService.Submit(c.Request.Context(), AlertRequestToInput(input))
	if err != nil {
		h.respondError(c, log.WithField("type", input.Type), err)
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}

// @Summary List alerts
// @Description Returns all alerts, or only alerts of the given sender
// @Tags Alerts
// @Produce json
// @Param username query string false "Sender username"
// @Success 200 {array} AlertResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	username := c.Query("username")
	log := h.requestLog(c, "listAlerts").WithField("username", username)

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary File an incident
// @Description Files an E-FIR manually. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Alert already has an incident"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.requestLog(c, "createIncident")
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.alertService.FileIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary List incidents
// @Description Returns all E-FIRs, or only E-FIRs of the given sender
// @Tags Incidents
// @Produce json
// @Param username query string false "Sender username"
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	username := c.Query("username")
	log := h.requestLog(c, "listIncidents").WithField("username", username)

	incidents, err := h.alertService.ListIncidents(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path int true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.requestLog(c, "getIncident").WithField("id", id)

	incident, err := h.alertService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
