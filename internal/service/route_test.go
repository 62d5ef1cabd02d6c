package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/ai"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/geo"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/service/mocks"
)

// Полилиния из документации Google: (38.5,-120.2), (40.7,-120.95), (43.252,-126.453)
const testPolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

// newTestRouteService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRouteService(t *testing.T) (RouteService, *mocks.MockDirectionsProvider, *mocks.MockIncidentRepository, *mocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)
	directionsMock := mocks.NewMockDirectionsProvider(ctrl)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	analyzerMock := mocks.NewMockAnalyzer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RouteBufferMeters:  300,
		DistanceWorkers:    4,
		RouteIncidentLimit: 200,
	}

	service := NewRouteService(directionsMock, repoMock, analyzerMock, logger, cfg)
	return service, directionsMock, repoMock, analyzerMock
}

func TestAnalyzeRoute_Success(t *testing.T) {
	// Подготовка
	service, directionsMock, repoMock, analyzerMock := newTestRouteService(t)
	ctx := context.Background()
	origin := geo.Point{Latitude: 38.5, Longitude: -120.2}
	destination := geo.Point{Latitude: 43.252, Longitude: -126.453}

	alternative := models.RouteAlternative{
		Summary:         "CA-88 E",
		EncodedPolyline: testPolyline,
		DurationSeconds: 100,
		TrafficSeconds:  170,
		Steps: []models.RouteStep{
			{Maneuver: "turn-left"},
			{Maneuver: ""},
			{Maneuver: "roundabout-right"},
			{Maneuver: "merge"},
		},
	}
	// Инцидент лежит точно на вершине полилинии, второй далеко за буфером
	incidents := []*models.Incident{
		{Latitude: 40.7, Longitude: -120.95, Category: "Accident"},
		{Latitude: 13.0827, Longitude: 80.2707, Category: "Flooding"},
	}

	// Ожидания
	directionsMock.EXPECT().
		Routes(ctx, origin, destination).
		Return([]models.RouteAlternative{alternative}, nil).
		Times(1)
	repoMock.EXPECT().
		ListRecentIncidents(ctx, 200).
		Return(incidents, nil).
		Times(1)
	directionsMock.EXPECT().
		DrivingDistance(gomock.Any(), origin, gomock.Any()).
		Return("2 km", nil).
		AnyTimes()
	analyzerMock.EXPECT().
		SummarizeRouteHazards(ctx, "CA-88 E", gomock.Any()).
		Return("One accident reported on the route", nil).
		Times(1)
	analyzerMock.EXPECT().
		PredictImpact(ctx, "CA-88 E", gomock.Any()).
		Return(&ai.ImpactReport{Level: "moderate", Summary: "Expect delays"}, nil).
		Times(1)

	// Действие
	analysis, err := service.AnalyzeRoute(ctx, origin, destination)

	// Проверки
	require.NoError(t, err)
	require.Len(t, analysis.Alternatives, 1)
	assert.Equal(t, 2, analysis.Alternatives[0].JunctionCount)
	assert.Equal(t, models.TrafficHeavy, analysis.Alternatives[0].TrafficStatus)
	require.Len(t, analysis.OnRouteIncidents, 1)
	assert.Equal(t, "Accident", analysis.OnRouteIncidents[0].Category)
	require.NotNil(t, analysis.Nearest)
	assert.Equal(t, float64(2000), analysis.Nearest.DistanceMeters)
	assert.Equal(t, "One accident reported on the route", analysis.HazardSummary)
	assert.Equal(t, "moderate", analysis.ImpactLevel)
}

func TestAnalyzeRoute_NearestIgnoresOffRouteIncidents(t *testing.T) {
	// Подготовка
	service, directionsMock, repoMock, analyzerMock := newTestRouteService(t)
	ctx := context.Background()
	origin := geo.Point{Latitude: 38.5, Longitude: -120.2}
	destination := geo.Point{Latitude: 43.252, Longitude: -126.453}

	alternative := models.RouteAlternative{
		Summary:         "CA-88 E",
		EncodedPolyline: testPolyline,
		DurationSeconds: 100,
		TrafficSeconds:  110,
	}
	// Первый инцидент на вершине маршрута, второй далеко за буфером,
	// но с меньшим дорожным расстоянием от старта
	incidents := []*models.Incident{
		{Latitude: 40.7, Longitude: -120.95, Category: "Accident"},
		{Latitude: 13.0827, Longitude: 80.2707, Category: "Flooding"},
	}

	// Ожидания: расстояние запрашивается только для инцидентов в буфере
	directionsMock.EXPECT().
		Routes(ctx, origin, destination).
		Return([]models.RouteAlternative{alternative}, nil).
		Times(1)
	repoMock.EXPECT().
		ListRecentIncidents(ctx, 200).
		Return(incidents, nil).
		Times(1)
	directionsMock.EXPECT().
		DrivingDistance(gomock.Any(), origin, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, dest geo.Point) (string, error) {
			if dest.Latitude < 20 {
				t.Errorf("driving distance requested for an incident outside the route buffer: %v", dest)
			}
			return "5 km", nil
		}).
		Times(1)
	analyzerMock.EXPECT().
		SummarizeRouteHazards(ctx, "CA-88 E", gomock.Any()).
		Return("", nil).
		Times(1)
	analyzerMock.EXPECT().
		PredictImpact(ctx, "CA-88 E", gomock.Any()).
		Return(&ai.ImpactReport{Level: "low", Summary: "Minimal delays"}, nil).
		Times(1)

	// Действие
	analysis, err := service.AnalyzeRoute(ctx, origin, destination)

	// Проверки: побеждает инцидент с маршрута, а не более близкий вне буфера
	require.NoError(t, err)
	require.NotNil(t, analysis.Nearest)
	assert.Equal(t, "Accident", analysis.Nearest.Incident.Category)
	assert.Equal(t, float64(5000), analysis.Nearest.DistanceMeters)
}

func TestAnalyzeRoute_DirectionsError(t *testing.T) {
	// Подготовка
	service, directionsMock, _, _ := newTestRouteService(t)
	ctx := context.Background()
	origin := geo.Point{Latitude: 1, Longitude: 1}
	destination := geo.Point{Latitude: 2, Longitude: 2}

	// Ожидания
	directionsMock.EXPECT().
		Routes(ctx, origin, destination).
		Return(nil, fmt.Errorf("quota exceeded")).
		Times(1)

	// Действие
	analysis, err := service.AnalyzeRoute(ctx, origin, destination)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, analysis)
}

func TestAnalyzeRoute_NoUsableRoutes(t *testing.T) {
	// Подготовка
	service, directionsMock, _, _ := newTestRouteService(t)
	ctx := context.Background()
	origin := geo.Point{Latitude: 1, Longitude: 1}
	destination := geo.Point{Latitude: 2, Longitude: 2}

	// Ожидания
	directionsMock.EXPECT().
		Routes(ctx, origin, destination).
		Return([]models.RouteAlternative{}, nil).
		Times(1)

	// Действие
	analysis, err := service.AnalyzeRoute(ctx, origin, destination)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, analysis)
}

func TestAnalyzeRoute_GenerativeSummariesAreOptional(t *testing.T) {
	// Подготовка
	service, directionsMock, repoMock, analyzerMock := newTestRouteService(t)
	ctx := context.Background()
	origin := geo.Point{Latitude: 38.5, Longitude: -120.2}
	destination := geo.Point{Latitude: 43.252, Longitude: -126.453}

	alternative := models.RouteAlternative{
		Summary:         "CA-88 E",
		EncodedPolyline: testPolyline,
		DurationSeconds: 100,
		TrafficSeconds:  110,
	}

	// Ожидания: обе генеративные сводки падают, анализ все равно возвращается
	directionsMock.EXPECT().
		Routes(ctx, origin, destination).
		Return([]models.RouteAlternative{alternative}, nil).
		Times(1)
	repoMock.EXPECT().
		ListRecentIncidents(ctx, 200).
		Return([]*models.Incident{}, nil).
		Times(1)
	analyzerMock.EXPECT().
		SummarizeRouteHazards(ctx, "CA-88 E", gomock.Any()).
		Return("", fmt.Errorf("model unavailable")).
		Times(1)
	analyzerMock.EXPECT().
		PredictImpact(ctx, "CA-88 E", gomock.Any()).
		Return(nil, fmt.Errorf("model unavailable")).
		Times(1)

	// Действие
	analysis, err := service.AnalyzeRoute(ctx, origin, destination)

	// Проверки
	require.NoError(t, err)
	require.Len(t, analysis.Alternatives, 1)
	assert.Equal(t, models.TrafficLight, analysis.Alternatives[0].TrafficStatus)
	assert.Empty(t, analysis.HazardSummary)
	assert.Nil(t, analysis.Nearest)
}
