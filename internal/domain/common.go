package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate - WGS84 point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate the way the provider and the UI expect it: "lat,lng"
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// IsValid checks coordinate ranges
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ParseCoordinate parses "lat,lng"
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("coordinate out of range %q", s)
	}
	return c, nil
}

// Location is either a free-form address or a resolved coordinate
type Location struct {
	Query      string
	Coordinate *Coordinate
}

// NewLocation builds a location from user input; "lat,lng" input is resolved immediately
func NewLocation(input string) Location {
	input = strings.TrimSpace(input)
	if c, err := ParseCoordinate(input); err == nil {
		return Location{Query: input, Coordinate: &c}
	}
	return Location{Query: input}
}

// LocationAt builds a resolved location
func LocationAt(c Coordinate) Location {
	return Location{Query: c.String(), Coordinate: &c}
}

// IsResolved reports whether the location carries a coordinate
func (l Location) IsResolved() bool {
	return l.Coordinate != nil
}

// String returns the provider query for the location
func (l Location) String() string {
	if l.Coordinate != nil {
		return l.Coordinate.String()
	}
	return l.Query
}
