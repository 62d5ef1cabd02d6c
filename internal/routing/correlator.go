package routing

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/geo"
	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"
)

// DefaultBufferMeters - боковой буфер маршрута, в пределах которого
// инцидент считается лежащим "на маршруте"
const DefaultBufferMeters = 300.0

// DistanceEstimator возвращает дорожное расстояние между двумя точками
// в текстовом виде ("4.2 km" или "350 m")
type DistanceEstimator interface {
	DrivingDistance(ctx context.Context, origin, destination geo.Point) (string, error)
}

// RankedIncident - инцидент с вычисленным дорожным расстоянием от старта
type RankedIncident struct {
	Incident       *models.Incident
	DistanceMeters float64
	DistanceText   string
}

// Correlator сопоставляет инциденты с геометрией маршрута
type Correlator struct {
	bufferMeters float64
	workers      int
}

// NewCorrelator создает коррелятор с указанным буфером в метрах.
// workers ограничивает параллелизм запросов дорожных расстояний.
func NewCorrelator(bufferMeters float64, workers int) *Correlator {
	if bufferMeters <= 0 {
		bufferMeters = DefaultBufferMeters
	}
	if workers <= 0 {
		workers = 4
	}
	return &Correlator{bufferMeters: bufferMeters, workers: workers}
}

// OnRouteIncidents возвращает инциденты, лежащие в пределах буфера
// от любого сегмента ломаной маршрута. Инциденты с некорректными
// координатами молча пропускаются.
func (c *Correlator) OnRouteIncidents(route []geo.Point, incidents []*models.Incident) ([]*models.Incident, error) {
	if len(route) == 0 {
		return nil, errors.New("route polyline has no points")
	}

	onRoute := make([]*models.Incident, 0)
	for _, incident := range incidents {
		point := geo.Point{Latitude: incident.Latitude, Longitude: incident.Longitude}
		distance, err := geo.DistanceToPolyline(point, route)
		if err != nil {
			continue
		}
		if distance <= c.bufferMeters {
			onRoute = append(onRoute, incident)
		}
	}
	return onRoute, nil
}

// NearestIncident определяет ближайший к старту маршрута инцидент по
// дорожному расстоянию. Запросы расстояний выполняются параллельно через
// ограниченный пул воркеров; инциденты, для которых запрос или разбор
// расстояния не удался, пропускаются. При равных расстояниях побеждает
// инцидент с меньшим исходным индексом (стабильная сортировка).
func (c *Correlator) NearestIncident(ctx context.Context, estimator DistanceEstimator, start geo.Point, incidents []*models.Incident) (*RankedIncident, error) {
	if len(incidents) == 0 {
		return nil, nil
	}

	results := make([]*RankedIncident, len(incidents))

	var wg sync.WaitGroup
	sem := make(chan struct{}, c.workers)

	for i, incident := range incidents {
		wg.Add(1)
		go func(i int, incident *models.Incident) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			dest := geo.Point{Latitude: incident.Latitude, Longitude: incident.Longitude}
			text, err := estimator.DrivingDistance(ctx, start, dest)
			if err != nil {
				return
			}
			meters, err := ParseDistanceText(text)
			if err != nil {
				return
			}
			results[i] = &RankedIncident{
				Incident:       incident,
				DistanceMeters: meters,
				DistanceText:   text,
			}
		}(i, incident)
	}
	wg.Wait()

	ranked := make([]*RankedIncident, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, r)
		}
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})
	return ranked[0], nil
}

// ParseDistanceText разбирает текстовое расстояние в метры.
// Поддерживаются формат "1.2 km" и метры с суффиксом или без ("350 m", "350").
func ParseDistanceText(text string) (float64, error) {
	s := strings.TrimSpace(strings.ToLower(text))
	if s == "" {
		return 0, errors.New("empty distance text")
	}
	s = strings.ReplaceAll(s, ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "km"):
		multiplier = 1000.0
		s = strings.TrimSpace(strings.TrimSuffix(s, "km"))
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "m"))
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("unparseable distance text: " + text)
	}
	return value * multiplier, nil
}
