package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-polyline"
)

// Point - географическая координата
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

const earthRadiusMeters = 6371000

// IsValid проверяет допустимость координат
func (p Point) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Distance возвращает расстояние между двумя точками в метрах
// по формуле гаверсинусов
func Distance(p1, p2 Point) float64 {
	if p1.Latitude == p2.Latitude && p1.Longitude == p2.Longitude {
		return 0
	}

	lat1 := p1.Latitude * math.Pi / 180
	lon1 := p1.Longitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	lon2 := p2.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// DistanceToPolyline возвращает минимальное расстояние в метрах от точки
// до ломаной. Для ломаной из одной точки это расстояние до нее.
func DistanceToPolyline(point Point, pts []Point) (float64, error) {
	if !point.IsValid() {
		return 0, errors.New("invalid point coordinates")
	}
	if len(pts) == 0 {
		return 0, errors.New("polyline has no points")
	}
	if len(pts) == 1 {
		return Distance(point, pts[0]), nil
	}

	minDistance := math.Inf(1)
	for i := 0; i < len(pts)-1; i++ {
		d := distanceToSegment(point, pts[i], pts[i+1])
		if d < minDistance {
			minDistance = d
		}
	}
	return minDistance, nil
}

// distanceToSegment возвращает расстояние от точки до отрезка большого круга.
// Используется приближение cross-track, достаточное для коротких дорожных сегментов.
func distanceToSegment(point, start, end Point) float64 {
	if start.Latitude == end.Latitude && start.Longitude == end.Longitude {
		return Distance(point, start)
	}

	distanceToStart := Distance(point, start)
	distanceToEnd := Distance(point, end)
	segmentLength := Distance(start, end)

	// Очень короткий сегмент считаем точкой
	if segmentLength < 1 {
		return math.Min(distanceToStart, distanceToEnd)
	}

	lat1 := start.Latitude * math.Pi / 180
	lon1 := start.Longitude * math.Pi / 180
	lat2 := end.Latitude * math.Pi / 180
	lon2 := end.Longitude * math.Pi / 180
	lat3 := point.Latitude * math.Pi / 180
	lon3 := point.Longitude * math.Pi / 180

	d13 := distanceToStart / earthRadiusMeters

	// Начальный азимут от начала сегмента к его концу
	y := math.Sin(lon2-lon1) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	bearingToEnd := math.Atan2(y, x)

	// Азимут от начала сегмента к точке
	y = math.Sin(lon3-lon1) * math.Cos(lat3)
	x = math.Cos(lat1)*math.Sin(lat3) - math.Sin(lat1)*math.Cos(lat3)*math.Cos(lon3-lon1)
	bearingToPoint := math.Atan2(y, x)

	dxt := math.Asin(math.Sin(d13) * math.Sin(bearingToPoint-bearingToEnd))
	crossTrack := math.Abs(dxt) * earthRadiusMeters

	// Если проекция точки лежит за концом сегмента,
	// берем расстояние до ближайшего конца
	dat := math.Acos(math.Cos(d13) / math.Cos(dxt))
	alongTrack := dat * earthRadiusMeters
	if alongTrack > segmentLength {
		return distanceToEnd
	}

	return crossTrack
}

// DecodePolyline декодирует encoded polyline в последовательность точек
func DecodePolyline(encoded string) ([]Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode polyline: " + err.Error())
	}

	points := make([]Point, len(coords))
	for i, coord := range coords {
		points[i] = Point{Latitude: coord[0], Longitude: coord[1]}
		if !points[i].IsValid() {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}
	return points, nil
}
