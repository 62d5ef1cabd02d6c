package models

import "time"

// TrafficStatus - качественная оценка загруженности маршрута,
// выводится из отношения времени с пробками к свободному времени.
type TrafficStatus string

const (
	TrafficLight    TrafficStatus = "light"
	TrafficModerate TrafficStatus = "moderate"
	TrafficHeavy    TrafficStatus = "heavy"
)

// LatLng - пара координат в ответах внешних API
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Bounds - ограничивающий прямоугольник маршрута
type Bounds struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// RouteStep - один шаг пошаговой инструкции маршрута.
// Maneuver может быть пустым (прямые участки без указания).
type RouteStep struct {
	Maneuver string `json:"maneuver,omitempty"`
}

// RouteAlternative - один вариант маршрута между двумя точками.
// Не персистится, живет в рамках одного запроса анализа.
type RouteAlternative struct {
	Summary               string        `json:"summary"`
	DistanceText          string        `json:"distance"`
	DurationText          string        `json:"duration"`
	DurationInTrafficText string        `json:"duration_in_traffic"`
	DurationSeconds       int           `json:"duration_seconds"`
	TrafficSeconds        int           `json:"traffic_seconds"`
	EncodedPolyline       string        `json:"encoded_polyline"`
	Bounds                Bounds        `json:"bounds"`
	Steps                 []RouteStep   `json:"-"`
	JunctionCount         int           `json:"junction_count"`
	TrafficStatus         TrafficStatus `json:"traffic_status"`
}

// NearestIncident - ближайший к началу маршрута инцидент
// по дорожному расстоянию
type NearestIncident struct {
	Incident       *Incident `json:"incident"`
	DistanceMeters float64   `json:"distance_meters"`
	DistanceText   string    `json:"distance_text"`
}

// RouteAnalysis - результат анализа маршрута: варианты проезда,
// инциденты в буфере маршрута и сводка об опасностях.
type RouteAnalysis struct {
	Alternatives     []RouteAlternative `json:"alternatives"`
	OnRouteIncidents []*Incident        `json:"on_route_incidents"`
	Nearest          *NearestIncident   `json:"nearest_incident,omitempty"`
	HazardSummary    string             `json:"hazard_summary,omitempty"`
	ImpactLevel      string             `json:"impact_level,omitempty"`
	ImpactSummary    string             `json:"impact_summary,omitempty"`
}

// LiveIncident - эфемерный результат живого поиска, не персистится
type LiveIncident struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	TimeAgo   string    `json:"time_ago"`
	Location  string    `json:"location"`
}

// LiveSectionReport - синтезированный отчет по одному поисковому запросу
type LiveSectionReport struct {
	Kind      string         `json:"kind"`
	Category  string         `json:"category"`
	Summary   string         `json:"summary"`
	Impact    string         `json:"impact"`
	Incidents []LiveIncident `json:"incidents"`
}

// LiveReport - объединенный отчет живого поиска по адресу
type LiveReport struct {
	Location string              `json:"location"`
	Sections []LiveSectionReport `json:"sections"`
}

// PlacePrediction - подсказка автодополнения адреса
type PlacePrediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// PlaceDetails - детали места по его place_id
type PlaceDetails struct {
	PlaceID          string  `json:"place_id"`
	FormattedAddress string  `json:"formatted_address"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}
