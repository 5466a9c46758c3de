package dto

// TourResponse - ответ с маршрутами; ScenicRoute is omitted when no scenic route applies
type TourResponse struct {
	FastestRoute RouteResponse  `json:"fastest_route"`
	ScenicRoute  *RouteResponse `json:"scenic_route,omitempty"`
}

// RouteResponse - маршрут в формате клиента
type RouteResponse struct {
	Distance     string                `json:"distance" example:"12.3 km"`
	Duration     string                `json:"duration" example:"25 mins"`
	Steps        []StepResponse        `json:"steps"`
	Polyline     string                `json:"polyline"`
	ScenicPoints []ScenicPointResponse `json:"scenic_points,omitempty"`
}

// StepResponse - шаг маршрута, instruction may contain HTML
type StepResponse struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

// ScenicPointResponse - живописная точка на маршруте
type ScenicPointResponse struct {
	Location         string   `json:"location" example:"41.3851,2.1734"`
	Type             string   `json:"type" example:"coastal"`
	Name             string   `json:"name"`
	Weight           float64  `json:"weight"`
	PlaceID          string   `json:"place_id"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	PhotoReference   string   `json:"photo_reference,omitempty"`
	Address          string   `json:"address,omitempty"`
	Description      string   `json:"description,omitempty"`
	Website          string   `json:"website,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	OpeningHours     []string `json:"opening_hours,omitempty"`
}
