package routing

import "github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/models"

// Пороги отношения времени с пробками к свободному времени
const (
	trafficModerateRatio = 1.2
	trafficHeavyRatio    = 1.6
)

// junctionManeuvers - фиксированный набор маневров, которые считаются
// перекрестками. Это подсчет инструкций поворотов, а не анализ дорожного
// графа: шаги без маневра и прямые участки не учитываются.
var junctionManeuvers = map[string]struct{}{
	"turn-sharp-left":   {},
	"turn-sharp-right":  {},
	"turn-slight-left":  {},
	"turn-slight-right": {},
	"turn-left":         {},
	"turn-right":        {},
	"roundabout-left":   {},
	"roundabout-right":  {},
	"fork-left":         {},
	"fork-right":        {},
}

// CountJunctions подсчитывает количество шагов маршрута с маневром
// из набора junction-маневров
func CountJunctions(steps []models.RouteStep) int {
	count := 0
	for _, step := range steps {
		if _, ok := junctionManeuvers[step.Maneuver]; ok {
			count++
		}
	}
	return count
}

// ClassifyTraffic классифицирует загруженность по отношению времени
// с пробками к свободному времени: ratio < 1.2 - light, < 1.6 - moderate,
// иначе heavy. При нулевом свободном времени возвращается light.
func ClassifyTraffic(freeFlowSeconds, inTrafficSeconds int) models.TrafficStatus {
	if freeFlowSeconds <= 0 {
		return models.TrafficLight
	}

	ratio := float64(inTrafficSeconds) / float64(freeFlowSeconds)
	switch {
	case ratio < trafficModerateRatio:
		return models.TrafficLight
	case ratio < trafficHeavyRatio:
		return models.TrafficModerate
	default:
		return models.TrafficHeavy
	}
}
