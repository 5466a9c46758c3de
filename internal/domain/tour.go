package domain

import "github.com/google/uuid"

// MaxStops is the number of user stops a tour accepts
const MaxStops = 5

// Tolerance bounds in percent
const (
	MinETATolerance     = 10
	MaxETATolerance     = 75
	DefaultETATolerance = 30
)

// Stop - user waypoint; order inside TourRequest.Stops is significant
type Stop struct {
	ID       uuid.UUID
	Location Location
}

// TourRequest - normalized tour request
type TourRequest struct {
	Origin       Location
	Destination  Location
	Stops        []Stop
	Mode         TravelMode
	Scenic       bool
	ETATolerance int
}

// StopLocations returns the stop locations in caller order
func (r *TourRequest) StopLocations() []Location {
	result := make([]Location, len(r.Stops))
	for i, s := range r.Stops {
		result[i] = s.Location
	}
	return result
}

// BudgetSeconds returns the maximum scenic duration allowed for a fastest duration
func (r *TourRequest) BudgetSeconds(fastestSeconds int) float64 {
	return float64(fastestSeconds) * (1 + float64(r.ETATolerance)/100)
}

// Distance - provider display text plus underlying meters
type Distance struct {
	Text   string
	Meters int
}

// Duration - provider display text plus underlying seconds
type Duration struct {
	Text    string
	Seconds int
}

// Step - one maneuver, instruction may contain simple HTML
type Step struct {
	Instruction string
	Distance    Distance
	Duration    Duration
}

// Leg - route section between two consecutive waypoints
type Leg struct {
	Start    Coordinate
	End      Coordinate
	Distance Distance
	Duration Duration
}

// Route - provider route with optional scenic points in travel order
type Route struct {
	Distance     Distance
	Duration     Duration
	Steps        []Step
	Legs         []Leg
	Polyline     string
	ScenicPoints []Candidate
}

// Waypoints returns the resolved coordinates the route passes through,
// origin and destination included
func (r *Route) Waypoints() []Coordinate {
	if len(r.Legs) == 0 {
		return nil
	}
	result := make([]Coordinate, 0, len(r.Legs)+1)
	for _, leg := range r.Legs {
		result = append(result, leg.Start)
	}
	return append(result, r.Legs[len(r.Legs)-1].End)
}

// Tour - result of a tour request; Scenic is nil when no scenic route applies
type Tour struct {
	Fastest Route
	Scenic  *Route
}
