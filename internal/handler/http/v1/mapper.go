package v1

import "github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"

// DTOToPoliceAlertModel преобразует DTO заявки в доменную модель
func DTOToPoliceAlertModel(dto CreatePoliceAlertRequest) *models.PoliceAlert {
	return &models.PoliceAlert{
		ChildName:       dto.ChildName,
		SchoolName:      dto.SchoolName,
		OverdueBy:       dto.OverdueBy,
		TimeLeftSchool:  dto.TimeLeftSchool,
		SchoolContact:   dto.SchoolContact,
		HomeLatitude:    dto.HomeLatitude,
		HomeLongitude:   dto.HomeLongitude,
		SchoolLatitude:  dto.SchoolLatitude,
		SchoolLongitude: dto.SchoolLongitude,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:        model.ID,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Category:  model.Category,
		Severity:  string(model.Severity),
		Summary:   model.Summary,
		Address:   model.Address,
		Upvotes:   model.Upvotes,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToCommentResponse преобразует комментарий в DTO для ответа
func ModelToCommentResponse(model *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         model.ID,
		IncidentID: model.IncidentID,
		Text:       model.Text,
		Author:     model.Author,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToCommentResponses преобразует слайс комментариев в слайс DTO
func ModelsToCommentResponses(models []*models.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToCommentResponse(model)
	}
	return responses
}
