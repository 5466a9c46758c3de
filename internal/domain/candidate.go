package domain

// Candidate - point of interest considered for a scenic route
type Candidate struct {
	PlaceID          string
	Name             string
	Location         Coordinate
	Category         Category
	Weight           float64
	Rating           *float64
	UserRatingsTotal *int
	PhotoReference   string
	Address          string
	Description      string
	Website          string
	Phone            string
	OpeningHours     []string

	// DiscoveryIndex is the order the provider returned the place in
	DiscoveryIndex int
}

// HasRating reports whether the provider rated the place
func (c *Candidate) HasRating() bool {
	return c.Rating != nil
}

// ReviewCount returns the number of user ratings, zero when unknown
func (c *Candidate) ReviewCount() int {
	if c.UserRatingsTotal == nil {
		return 0
	}
	return *c.UserRatingsTotal
}

// ApplyDetails copies non-empty place details onto the candidate
func (c *Candidate) ApplyDetails(d *PlaceDetails) {
	if d == nil {
		return
	}
	if d.Address != "" {
		c.Address = d.Address
	}
	if d.Description != "" {
		c.Description = d.Description
	}
	if d.Website != "" {
		c.Website = d.Website
	}
	if d.Phone != "" {
		c.Phone = d.Phone
	}
	if len(d.OpeningHours) > 0 {
		c.OpeningHours = d.OpeningHours
	}
	if c.PhotoReference == "" && d.PhotoReference != "" {
		c.PhotoReference = d.PhotoReference
	}
	if c.Rating == nil && d.Rating != nil {
		c.Rating = d.Rating
	}
	if c.UserRatingsTotal == nil && d.UserRatingsTotal != nil {
		c.UserRatingsTotal = d.UserRatingsTotal
	}
}

// PlaceDetails - extended provider metadata of a place
type PlaceDetails struct {
	PlaceID          string   `json:"place_id"`
	Address          string   `json:"address,omitempty"`
	Description      string   `json:"description,omitempty"`
	Website          string   `json:"website,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	OpeningHours     []string `json:"opening_hours,omitempty"`
	PhotoReference   string   `json:"photo_reference,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
}
