package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// PlacesClient - клиент Google Places API (автодополнение и детали места)
type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPlacesClient создает клиент Places API
func NewPlacesClient(apiKey string) *PlacesClient {
	return &PlacesClient{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Autocomplete возвращает подсказки адресов по введенному тексту
func (c *PlacesClient) Autocomplete(ctx context.Context, input string) ([]models.PlacePrediction, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("key", c.apiKey)

	var parsed autocompleteResponse
	if err := c.get(ctx, "/autocomplete/json", params, &parsed); err != nil {
		return nil, err
	}

	// ZERO_RESULTS не ошибка: просто нет подсказок
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places autocomplete status %s", parsed.Status)
	}

	predictions := make([]models.PlacePrediction, 0, len(parsed.Predictions))
	for _, p := range parsed.Predictions {
		predictions = append(predictions, models.PlacePrediction{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}
	return predictions, nil
}

// Details возвращает адрес и координаты места по его place_id
func (c *PlacesClient) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,formatted_address,geometry")
	params.Set("key", c.apiKey)

	var parsed detailsResponse
	if err := c.get(ctx, "/details/json", params, &parsed); err != nil {
		return nil, err
	}

	if parsed.Status != "OK" {
		return nil, fmt.Errorf("places details status %s", parsed.Status)
	}

	return &models.PlaceDetails{
		PlaceID:          parsed.Result.PlaceID,
		FormattedAddress: parsed.Result.FormattedAddress,
		Latitude:         parsed.Result.Geometry.Location.Lat,
		Longitude:        parsed.Result.Geometry.Location.Lng,
	}, nil
}

func (c *PlacesClient) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute places request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("places API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

// Структуры ответов Places API

type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID          string `json:"place_id"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}
