package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// PlacesProvider определяет контракт геокодирования адресов
type PlacesProvider interface {
	Autocomplete(ctx context.Context, input string) ([]models.PlacePrediction, error)
	Details(ctx context.Context, placeID string) (*models.PlaceDetails, error)
}

// PlacesService определяет контракт поиска и выбора адресов
type PlacesService interface {
	Autocomplete(ctx context.Context, input string) ([]models.PlacePrediction, error)
	Details(ctx context.Context, placeID string) (*models.PlaceDetails, error)
}

type placesService struct {
	provider PlacesProvider
	logger   *logrus.Logger
}

func NewPlacesService(provider PlacesProvider, logger *logrus.Logger) PlacesService {
	return &placesService{provider: provider, logger: logger}
}

// Autocomplete возвращает подсказки адресов по частичному вводу
func (s *placesService) Autocomplete(ctx context.Context, input string) ([]models.PlacePrediction, error) {
	predictions, err := s.provider.Autocomplete(ctx, input)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch place predictions")
		return nil, fmt.Errorf("service: could not autocomplete places: %w", err)
	}
	return predictions, nil
}

// Details возвращает координаты и адрес выбранного места
func (s *placesService) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	details, err := s.provider.Details(ctx, placeID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"place_id": placeID,
		}).WithError(err).Error("Failed to fetch place details")
		return nil, fmt.Errorf("service: could not fetch place details: %w", err)
	}
	return details, nil
}
