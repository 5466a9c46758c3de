package usecase

import (
	"math"

	"github.com/scenic-tour/internal/domain"
)

// Weight model constants
const (
	maxRating        = 5.0
	ratingShare      = 0.5
	reviewShare      = 0.5
	reviewSaturation = 250.0
)

// ScenicWeight оценивает привлекательность места.
// An unrated place keeps the base weight of its category.
func ScenicWeight(category domain.Category, rating *float64, reviews int) float64 {
	base := category.BaseWeight()
	if rating == nil {
		return base
	}

	norm := math.Max(0, math.Min(1, *rating/maxRating))
	if reviews < 0 {
		reviews = 0
	}
	saturation := 1 - math.Exp(-float64(reviews)/reviewSaturation)

	return base * (1 + norm*(ratingShare+reviewShare*saturation))
}

// scoreCandidate sets the weight of a candidate from its category and rating
func scoreCandidate(c *domain.Candidate) {
	c.Weight = ScenicWeight(c.Category, c.Rating, c.ReviewCount())
}
