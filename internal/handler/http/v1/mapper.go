package v1

import (
	"time"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

func LoginRequestToInput(dto LoginRequest) service.LoginInput {
	return service.LoginInput{
		Username:  dto.Username,
		Password:  dto.Password,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Name:      dto.Name,
		TouristID: dto.TouristID,
	}
}

func DTOToTouristModel(dto CreateTouristRequest) *models.Tourist {
	return &models.Tourist{
		TouristID: dto.TouristID,
		Name:      dto.Name,
		Username:  dto.Username,
		Password:  dto.Password,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
	}
}

// ModelToTouristResponse преобразует туриста в DTO; пароль не попадает в ответ
func ModelToTouristResponse(model *models.Tourist) *TouristResponse {
	return &TouristResponse{
		ID:        model.ID,
		TouristID: model.TouristID,
		Name:      model.Name,
		Username:  model.Username,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
	}
}

func ModelsToTouristResponses(models []*models.Tourist) []*TouristResponse {
	responses := make([]*TouristResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToTouristResponse(model)
	}
	return responses
}

func AlertRequestToInput(dto CreateAlertRequest) service.AlertInput {
	return service.AlertInput{
		Type:             dto.Type,
		SenderUsername:   dto.SenderUsername,
		SenderTouristID:  dto.SenderTouristID,
		Location:         dto.Location,
		Details:          dto.Details,
		DateTime:         dto.DateTime,
		MissingName:      dto.MissingName,
		MissingTouristID: dto.MissingTouristID,
		MissingLastSeen:  dto.MissingLastSeen,
	}
}

func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:               model.ID,
		Type:             model.Type,
		SenderUsername:   model.SenderUsername,
		SenderTouristID:  model.SenderTouristID,
		DateTime:         model.DateTime,
		Location:         model.Location,
		Details:          model.Details,
		MissingName:      model.MissingName,
		MissingTouristID: model.MissingTouristID,
		MissingLastSeen:  model.MissingLastSeen,
	}
}

func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// DTOToIncidentModel преобразует запрос ручного E-FIR; пустое время заполнит сервис
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		DateTime:       service.ParseAlertTime(dto.DateTime, time.Time{}),
		Station:        dto.Station,
		Details:        dto.Details,
		AlertID:        dto.AlertID,
		SenderUsername: dto.SenderUsername,
	}
}

func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:             model.ID,
		DateTime:       model.DateTime,
		Station:        model.Station,
		Details:        model.Details,
		AlertID:        model.AlertID,
		SenderUsername: model.SenderUsername,
	}
}

func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func SubmitResultToResponse(result *service.SubmitResult) *SubmitAlertResponse {
	resp := &SubmitAlertResponse{Alert: ModelToAlertResponse(result.Alert)}
	if result.Incident != nil {
		resp.Incident = ModelToIncidentResponse(result.Incident)
	}
	return resp
}
