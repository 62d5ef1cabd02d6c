package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/geo"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/routing"
)

// DirectionsProvider определяет контракт маршрутного провайдера
type DirectionsProvider interface {
	Routes(ctx context.Context, origin, destination geo.Point) ([]models.RouteAlternative, error)
	DrivingDistance(ctx context.Context, origin, destination geo.Point) (string, error)
}

// RouteService определяет контракт анализа маршрутов
type RouteService interface {
	AnalyzeRoute(ctx context.Context, origin, destination geo.Point) (*models.RouteAnalysis, error)
}

type routeService struct {
	directions DirectionsProvider
	repo       IncidentRepository
	analyzer   Analyzer
	correlator *routing.Correlator
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewRouteService(directions DirectionsProvider, repo IncidentRepository, analyzer Analyzer, logger *logrus.Logger, cfg *config.Config) RouteService {
	return &routeService{
		directions: directions,
		repo:       repo,
		analyzer:   analyzer,
		correlator: routing.NewCorrelator(float64(cfg.RouteBufferMeters), cfg.DistanceWorkers),
		logger:     logger,
		cfg:        cfg,
	}
}

// AnalyzeRoute строит альтернативные маршруты между двумя точками и
// сопоставляет их с известными инцидентами: попадание в буфер маршрута,
// ближайший инцидент по дорожному расстоянию, сводка опасностей и
// прогноз влияния на движение.
func (s *routeService) AnalyzeRoute(ctx context.Context, origin, destination geo.Point) (*models.RouteAnalysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "route",
		"method":  "AnalyzeRoute",
	})
	log.Info("Analyzing route alternatives")

	alternatives, err := s.directions.Routes(ctx, origin, destination)
	if err != nil {
		log.WithError(err).Error("Failed to fetch route alternatives")
		return nil, fmt.Errorf("service: could not fetch routes: %w", err)
	}

	// Альтернативы со сломанной полилинией отбрасываются, ошибка только
	// когда не осталось ни одного пригодного маршрута
	var usable []models.RouteAlternative
	var routePaths [][]geo.Point
	for _, alt := range alternatives {
		path, err := geo.DecodePolyline(alt.EncodedPolyline)
		if err != nil {
			log.WithError(err).WithField("route_summary", alt.Summary).Warn("Skipping route with an undecodable polyline")
			continue
		}
		alt.JunctionCount = routing.CountJunctions(alt.Steps)
		alt.TrafficStatus = routing.ClassifyTraffic(alt.DurationSeconds, alt.TrafficSeconds)
		usable = append(usable, alt)
		routePaths = append(routePaths, path)
	}
	if len(usable) == 0 {
		log.Error("No usable route alternatives returned")
		return nil, fmt.Errorf("service: no usable routes between the given points")
	}

	incidents, err := s.repo.ListRecentIncidents(ctx, s.cfg.RouteIncidentLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents for route analysis")
		return nil, fmt.Errorf("service: could not load incidents for route analysis: %w", err)
	}

	// Принадлежность считается по основному (первому) маршруту
	onRoute, err := s.correlator.OnRouteIncidents(routePaths[0], incidents)
	if err != nil {
		log.WithError(err).Error("Failed to correlate incidents with the route")
		return nil, fmt.Errorf("service: could not correlate incidents: %w", err)
	}

	analysis := &models.RouteAnalysis{
		Alternatives:     usable,
		OnRouteIncidents: onRoute,
	}

	// Ранжируются по дорожному расстоянию только инциденты внутри буфера
	nearest, err := s.correlator.NearestIncident(ctx, s.directions, origin, onRoute)
	if err != nil {
		log.WithError(err).Warn("Failed to rank incidents by driving distance")
	}
	if nearest != nil {
		analysis.Nearest = &models.NearestIncident{
			Incident:       nearest.Incident,
			DistanceMeters: nearest.DistanceMeters,
			DistanceText:   nearest.DistanceText,
		}
	}

	// Генеративные сводки не критичны для ответа
	hazard, err := s.analyzer.SummarizeRouteHazards(ctx, usable[0].Summary, onRoute)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize route hazards")
	} else {
		analysis.HazardSummary = hazard
	}

	impact, err := s.analyzer.PredictImpact(ctx, usable[0].Summary, onRoute)
	if err != nil {
		log.WithError(err).Warn("Failed to predict traffic impact")
	} else {
		analysis.ImpactLevel = impact.Level
		analysis.ImpactSummary = impact.Summary
	}

	log.WithFields(logrus.Fields{
		"alternatives":       len(usable),
		"on_route_incidents": len(onRoute),
	}).Info("Route analysis completed")
	return analysis, nil
}
