package domain

// TravelMode - transport mode understood by the routing provider
type TravelMode string

// Travel mode constants
const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// averageSpeedsKmh are used when a route gives nothing to calibrate against
var averageSpeedsKmh = map[TravelMode]float64{
	TravelModeDriving:   60.0,
	TravelModeWalking:   5.0,
	TravelModeBicycling: 15.0,
	TravelModeTransit:   30.0,
}

// ValidTravelModes returns list of valid travel modes
func ValidTravelModes() []TravelMode {
	return []TravelMode{
		TravelModeDriving,
		TravelModeWalking,
		TravelModeBicycling,
		TravelModeTransit,
	}
}

// IsValidTravelMode checks if travel mode is valid
func IsValidTravelMode(mode string) bool {
	for _, m := range ValidTravelModes() {
		if string(m) == mode {
			return true
		}
	}
	return false
}

// AverageSpeedMps returns the typical speed of the mode in meters per second.
// Unknown modes fall back to driving.
func (m TravelMode) AverageSpeedMps() float64 {
	speed, ok := averageSpeedsKmh[m]
	if !ok {
		speed = averageSpeedsKmh[TravelModeDriving]
	}
	return speed * 1000 / 3600
}

// SupportsWaypoints reports whether the provider accepts intermediate waypoints for the mode
func (m TravelMode) SupportsWaypoints() bool {
	return m != TravelModeTransit
}
