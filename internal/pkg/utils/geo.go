package utils

import (
	"fmt"
	"math"

	"github.com/scenic-tour/internal/domain"
	"github.com/twpayne/go-polyline"
)

const (
	earthRadiusM  = 6371000.0
	metersPerDeg  = 111320.0
	minSampleStep = 1.0
)

// DistanceMeters вычисляет расстояние между двумя точками по формуле гаверсинусов
func DistanceMeters(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lng - a.Lng) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// PathLength returns the length of a polyline path in meters
func PathLength(path []domain.Coordinate) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += DistanceMeters(path[i-1], path[i])
	}
	return total
}

// DecodePolyline decodes an encoded polyline into coordinates
func DecodePolyline(encoded string) ([]domain.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	path := make([]domain.Coordinate, 0, len(coords))
	for _, c := range coords {
		path = append(path, domain.Coordinate{Lat: c[0], Lng: c[1]})
	}
	return path, nil
}

// EncodePolyline encodes coordinates into a polyline string
func EncodePolyline(path []domain.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, c := range path {
		coords = append(coords, []float64{c.Lat, c.Lng})
	}
	return string(polyline.EncodeCoords(coords))
}

// SamplePath returns points every spacing meters along the path, first and last point included.
// When more than maxSamples points would be produced the spacing is widened to keep the whole
// path covered with exactly maxSamples points.
func SamplePath(path []domain.Coordinate, spacing float64, maxSamples int) []domain.Coordinate {
	if len(path) == 0 {
		return nil
	}
	length := PathLength(path)
	if len(path) == 1 || length == 0 || maxSamples == 1 {
		return []domain.Coordinate{path[0]}
	}
	if spacing < minSampleStep {
		spacing = minSampleStep
	}
	if maxSamples > 1 && int(math.Ceil(length/spacing))+1 > maxSamples {
		spacing = length / float64(maxSamples-1)
	}

	samples := []domain.Coordinate{path[0]}
	next := spacing
	walked := 0.0
	for i := 1; i < len(path); i++ {
		seg := DistanceMeters(path[i-1], path[i])
		for seg > 0 && next <= walked+seg && next < length-spacing/2 {
			f := (next - walked) / seg
			samples = append(samples, domain.Coordinate{
				Lat: path[i-1].Lat + f*(path[i].Lat-path[i-1].Lat),
				Lng: path[i-1].Lng + f*(path[i].Lng-path[i-1].Lng),
			})
			next += spacing
		}
		walked += seg
	}
	return append(samples, path[len(path)-1])
}

// DistanceToPath returns the shortest distance in meters from p to any segment of the path
func DistanceToPath(p domain.Coordinate, path []domain.Coordinate) float64 {
	switch len(path) {
	case 0:
		return math.Inf(1)
	case 1:
		return DistanceMeters(p, path[0])
	}

	best := math.Inf(1)
	for i := 1; i < len(path); i++ {
		if d := distanceToSegment(p, path[i-1], path[i]); d < best {
			best = d
		}
	}
	return best
}

// distanceToSegment works in a local equirectangular plane centered on p
func distanceToSegment(p, a, b domain.Coordinate) float64 {
	cosLat := math.Cos(p.Lat * math.Pi / 180.0)
	ax := (a.Lng - p.Lng) * cosLat * metersPerDeg
	ay := (a.Lat - p.Lat) * metersPerDeg
	bx := (b.Lng - p.Lng) * cosLat * metersPerDeg
	by := (b.Lat - p.Lat) * metersPerDeg

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = -(ax*dx + ay*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	x, y := ax+t*dx, ay+t*dy
	return math.Sqrt(x*x + y*y)
}
