package domain

// Category - kind of scenic point of interest
type Category string

// Scenic category constants
const (
	CategoryCoastal    Category = "coastal"
	CategoryIconic     Category = "iconic"
	CategoryNature     Category = "nature"
	CategoryForest     Category = "forest"
	CategoryCultural   Category = "cultural"
	CategoryAttraction Category = "attraction"
)

// CategoryProfile describes how a category is searched for and how desirable it is
type CategoryProfile struct {
	Category Category
	Keyword  string
	Weight   float64
}

// scenicCategories is ordered by desirability
var scenicCategories = []CategoryProfile{
	{Category: CategoryCoastal, Keyword: "waterfront", Weight: 1.5},
	{Category: CategoryIconic, Keyword: "landmark", Weight: 1.4},
	{Category: CategoryNature, Keyword: "scenic viewpoint", Weight: 1.3},
	{Category: CategoryForest, Keyword: "forest park", Weight: 1.3},
	{Category: CategoryCultural, Keyword: "museum", Weight: 1.2},
	{Category: CategoryAttraction, Keyword: "tourist attraction", Weight: 1.1},
}

// DefaultCategoryWeight is the desirability of categories missing from the table
const DefaultCategoryWeight = 1.0

// ScenicCategories returns all searchable scenic categories
func ScenicCategories() []CategoryProfile {
	result := make([]CategoryProfile, len(scenicCategories))
	copy(result, scenicCategories)
	return result
}

// LookupCategory returns the profile of a category
func LookupCategory(c Category) (CategoryProfile, bool) {
	for _, p := range scenicCategories {
		if p.Category == c {
			return p, true
		}
	}
	return CategoryProfile{}, false
}

// BaseWeight returns the category desirability
func (c Category) BaseWeight() float64 {
	if p, ok := LookupCategory(c); ok {
		return p.Weight
	}
	return DefaultCategoryWeight
}
