package ai

import (
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// IncidentInput - структурированный вход классификации отчета об инциденте
type IncidentInput struct {
	Description  string
	Address      string
	Latitude     float64
	Longitude    float64
	MediaDataURL string // data URL фото/видео-кадра, может быть пустым
}

// IncidentAnalysis - структурированный результат классификации
type IncidentAnalysis struct {
	Category string          `json:"category"`
	Severity models.Severity `json:"severity"`
	Summary  string          `json:"summary"`
}

// TrendReport - результат анализа трендов по накопленным инцидентам
type TrendReport struct {
	Summary          string `json:"summary"`
	DominantCategory string `json:"dominant_category"`
	Observation      string `json:"observation"`
}

// ImpactReport - предиктивная оценка влияния инцидентов на район
type ImpactReport struct {
	Level   string `json:"level"`
	Summary string `json:"summary"`
}

// LiveSynthesis - синтез сырых результатов веб-поиска в один отчет
type LiveSynthesis struct {
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Impact   string `json:"impact"`
}
