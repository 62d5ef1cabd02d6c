package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - уровень серьезности инцидента
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// IsValid проверяет, что severity входит в список допустимых значений
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Предлагаемые категории инцидентов. Категория хранится свободным текстом,
// но классификатор ориентируется на этот список.
var SuggestedCategories = []string{
	"Accident",
	"Traffic Jam",
	"Road Closure",
	"Flooding",
	"Power Outage",
	"Fallen Tree",
	"Pothole",
	"Public Disturbance",
	"Other",
}

// ReportInput - пользовательский отчет об инциденте до классификации.
// MediaDataURL содержит приложенный снимок в виде data URL, если он есть.
type ReportInput struct {
	Description  string
	Latitude     float64
	Longitude    float64
	Address      string
	MediaDataURL string
}

type Incident struct {
	ID        uuid.UUID `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Category  string    `json:"category"`
	Severity  Severity  `json:"severity"`
	Summary   string    `json:"summary"`
	Address   string    `json:"address,omitempty"`
	Upvotes   int       `json:"upvotes"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment - комментарий к инциденту. После создания не изменяется.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	Text       string    `json:"text"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
}
