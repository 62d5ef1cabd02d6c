package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/geo"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// DirectionsClient - клиент Google Directions API
type DirectionsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewDirectionsClient создает клиент Directions API
func NewDirectionsClient(apiKey string) *DirectionsClient {
	return &DirectionsClient{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/directions/json",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Routes запрашивает варианты маршрута между двумя точками с учетом пробок.
// Возвращаются все альтернативы, которые удалось разобрать; альтернативы
// без legs пропускаются.
func (c *DirectionsClient) Routes(ctx context.Context, origin, destination geo.Point) ([]models.RouteAlternative, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	params.Set("departure_time", "now")
	params.Set("alternatives", "true")
	params.Set("key", c.apiKey)

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("directions API returned no routes (status %s)", resp.Status)
	}

	alternatives := make([]models.RouteAlternative, 0, len(resp.Routes))
	for _, route := range resp.Routes {
		if len(route.Legs) == 0 {
			continue
		}
		leg := route.Legs[0]

		steps := make([]models.RouteStep, 0, len(leg.Steps))
		for _, step := range leg.Steps {
			steps = append(steps, models.RouteStep{Maneuver: step.Maneuver})
		}

		alt := models.RouteAlternative{
			Summary:         route.Summary,
			DistanceText:    leg.Distance.Text,
			DurationText:    leg.Duration.Text,
			DurationSeconds: leg.Duration.Value,
			EncodedPolyline: route.OverviewPolyline.Points,
			Bounds: models.Bounds{
				Northeast: models.LatLng{Latitude: route.Bounds.Northeast.Lat, Longitude: route.Bounds.Northeast.Lng},
				Southwest: models.LatLng{Latitude: route.Bounds.Southwest.Lat, Longitude: route.Bounds.Southwest.Lng},
			},
			Steps: steps,
		}
		if leg.DurationInTraffic != nil {
			alt.DurationInTrafficText = leg.DurationInTraffic.Text
			alt.TrafficSeconds = leg.DurationInTraffic.Value
		} else {
			alt.DurationInTrafficText = leg.Duration.Text
			alt.TrafficSeconds = leg.Duration.Value
		}
		alternatives = append(alternatives, alt)
	}

	if len(alternatives) == 0 {
		return nil, fmt.Errorf("directions API returned no usable routes")
	}
	return alternatives, nil
}

// DrivingDistance возвращает текстовое дорожное расстояние между двумя
// точками по первому найденному маршруту
func (c *DirectionsClient) DrivingDistance(ctx context.Context, origin, destination geo.Point) (string, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	params.Set("key", c.apiKey)

	resp, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return "", fmt.Errorf("directions API returned no route (status %s)", resp.Status)
	}
	return resp.Routes[0].Legs[0].Distance.Text, nil
}

func (c *DirectionsClient) get(ctx context.Context, params url.Values) (*directionsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directions request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("directions API error %d: %s", resp.StatusCode, string(body))
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if parsed.Status != "OK" {
		msg := parsed.ErrorMessage
		if msg == "" {
			msg = parsed.Status
		}
		return nil, fmt.Errorf("directions API status %s: %s", parsed.Status, msg)
	}
	return &parsed, nil
}

// Структуры ответа Directions API

type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string             `json:"summary"`
	OverviewPolyline directionsPolyline `json:"overview_polyline"`
	Bounds           directionsBounds   `json:"bounds"`
	Legs             []directionsLeg    `json:"legs"`
}

type directionsPolyline struct {
	Points string `json:"points"`
}

type directionsBounds struct {
	Northeast directionsLatLng `json:"northeast"`
	Southwest directionsLatLng `json:"southwest"`
}

type directionsLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsLeg struct {
	Distance          directionsTextValue  `json:"distance"`
	Duration          directionsTextValue  `json:"duration"`
	DurationInTraffic *directionsTextValue `json:"duration_in_traffic,omitempty"`
	Steps             []directionsStep     `json:"steps"`
}

type directionsTextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsStep struct {
	Maneuver string `json:"maneuver,omitempty"`
}
