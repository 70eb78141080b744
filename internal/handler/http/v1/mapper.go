package v1

import "github.com/diyapatel028/Mangrove-sentinals/internal/models"

// DTOToReportModel converts the creation DTO into the domain model.
func DTOToReportModel(dto CreateReportRequest) *models.Report {
	return &models.Report{
		Title:       dto.Title,
		Description: dto.Description,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		ThreatType:  dto.ThreatType,
		Severity:    dto.Severity,
	}
}

// DTOToAlertModel converts the creation DTO into the domain model.
func DTOToAlertModel(dto CreateAlertRequest) *models.Alert {
	return &models.Alert{
		Title:     dto.Title,
		Message:   dto.Message,
		AlertType: dto.AlertType,
		Severity:  dto.Severity,
		Location:  dto.Location,
	}
}

// DTOToZoneModel converts the creation DTO into the domain model.
func DTOToZoneModel(dto CreateZoneRequest) *models.Zone {
	return &models.Zone{
		Name:        dto.Name,
		Description: dto.Description,
		RiskLevel:   dto.RiskLevel,
		Coordinates: dto.Coordinates,
		AreaSize:    dto.AreaSize,
	}
}

// ModelToUserResponse converts the domain model into a response DTO. The
// password hash never leaves the service layer.
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:         model.ID,
		Email:      model.Email,
		FullName:   model.FullName,
		Phone:      model.Phone,
		Location:   model.Location,
		IsActive:   model.IsActive,
		IsSentinel: model.IsSentinel,
		Points:     model.Points,
		Badges:     model.Badges,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToUserResponses converts a slice of models into response DTOs.
func ModelsToUserResponses(models []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// ModelToReportResponse converts the domain model into a response DTO.
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Location:    model.Location,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		ThreatType:  model.ThreatType,
		Severity:    model.Severity,
		Status:      model.Status,
		Validated:   model.Validated,
		ReporterID:  model.ReporterID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelsToReportResponses converts a slice of models into response DTOs.
func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelToAlertResponse converts the domain model into a response DTO.
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:         model.ID,
		Title:      model.Title,
		Message:    model.Message,
		AlertType:  model.AlertType,
		Severity:   model.Severity,
		Location:   model.Location,
		IsActive:   model.IsActive,
		CreatedAt:  model.CreatedAt,
		ResolvedAt: model.ResolvedAt,
	}
}

// ModelsToAlertResponses converts a slice of models into response DTOs.
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// ModelToZoneResponse converts the domain model into a response DTO.
func ModelToZoneResponse(model *models.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		RiskLevel:   model.RiskLevel,
		Coordinates: model.Coordinates,
		AreaSize:    model.AreaSize,
		CreatedAt:   model.CreatedAt,
		LastPatrol:  model.LastPatrol,
	}
}

// ModelsToZoneResponses converts a slice of models into response DTOs.
func ModelsToZoneResponses(models []*models.Zone) []*ZoneResponse {
	responses := make([]*ZoneResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToZoneResponse(model)
	}
	return responses
}
