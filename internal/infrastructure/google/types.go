package google

// Provider statuses
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusNotFound       = "NOT_FOUND"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"
	statusInvalidRequest = "INVALID_REQUEST"
	statusUnknownError   = "UNKNOWN_ERROR"
	statusMaxWaypoints   = "MAX_WAYPOINTS_EXCEEDED"
	statusMaxRoute       = "MAX_ROUTE_LENGTH_EXCEEDED"
)

type envelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsResponse struct {
	envelope
	Routes []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string          `json:"summary"`
	Legs             []directionsLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
}

type directionsLeg struct {
	Distance      textValue        `json:"distance"`
	Duration      textValue        `json:"duration"`
	StartLocation latLng           `json:"start_location"`
	EndLocation   latLng           `json:"end_location"`
	StartAddress  string           `json:"start_address"`
	EndAddress    string           `json:"end_address"`
	Steps         []directionsStep `json:"steps"`
}

type directionsStep struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         textValue `json:"distance"`
	Duration         textValue `json:"duration"`
}

type nearbyResponse struct {
	envelope
	Results []placeResult `json:"results"`
}

type placeResult struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Geometry struct {
		Location latLng `json:"location"`
	} `json:"geometry"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	Photos           []photo  `json:"photos,omitempty"`
	Types            []string `json:"types,omitempty"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type detailsResponse struct {
	envelope
	Result placeDetails `json:"result"`
}

type placeDetails struct {
	FormattedAddress     string   `json:"formatted_address"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	Website              string   `json:"website"`
	Rating               *float64 `json:"rating,omitempty"`
	UserRatingsTotal     *int     `json:"user_ratings_total,omitempty"`
	Photos               []photo  `json:"photos,omitempty"`
	EditorialSummary     struct {
		Overview string `json:"overview"`
	} `json:"editorial_summary"`
	OpeningHours struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
}

// detailsFields are the place details requested for scenic points
const detailsFields = "formatted_address,photos,rating,user_ratings_total,editorial_summary,opening_hours,website,formatted_phone_number"
