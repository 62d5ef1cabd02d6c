package v1

import (
	"time"

	"github.com/google/uuid"
)

// APIResponse - единый конверт всех ответов API
// @Description Единый конверт всех ответов API
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CreateCommentRequest DTO для добавления комментария
// @Description DTO для добавления комментария
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CreatePoliceAlertRequest DTO для заявки о пропавшем ребенке
// @Description DTO для заявки о пропавшем ребенке
type CreatePoliceAlertRequest struct {
	ChildName       string  `json:"child_name" validate:"required,min=2,max=255"`
	SchoolName      string  `json:"school_name" validate:"required,min=2,max=255"`
	OverdueBy       string  `json:"overdue_by" validate:"required"`
	TimeLeftSchool  string  `json:"time_left_school,omitempty"`
	SchoolContact   string  `json:"school_contact,omitempty"`
	HomeLatitude    float64 `json:"home_latitude" validate:"required,latitude"`
	HomeLongitude   float64 `json:"home_longitude" validate:"required,longitude"`
	SchoolLatitude  float64 `json:"school_latitude" validate:"required,latitude"`
	SchoolLongitude float64 `json:"school_longitude" validate:"required,longitude"`
}

// AnalyzeRouteRequest DTO для анализа маршрута
// @Description DTO для анализа маршрута
type AnalyzeRouteRequest struct {
	OriginLatitude       float64 `json:"origin_latitude" validate:"required,latitude"`
	OriginLongitude      float64 `json:"origin_longitude" validate:"required,longitude"`
	DestinationLatitude  float64 `json:"destination_latitude" validate:"required,latitude"`
	DestinationLongitude float64 `json:"destination_longitude" validate:"required,longitude"`
}

// LiveSearchRequest DTO для живого поиска инцидентов
// @Description DTO для живого поиска инцидентов
type LiveSearchRequest struct {
	Address string `json:"address" validate:"required,min=3,max=500"`
}

// SpeakRequest DTO для синтеза речи
// @Description DTO для синтеза речи
type SpeakRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
	Summary   string    `json:"summary"`
	Address   string    `json:"address,omitempty"`
	Upvotes   int       `json:"upvotes"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse DTO для ответа с комментарием
// @Description DTO для ответа с комментарием
type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpvoteResponse DTO для ответа на голосование
// @Description DTO для ответа на голосование
type UpvoteResponse struct {
	ID      uuid.UUID `json:"id"`
	Upvotes int       `json:"upvotes"`
}
