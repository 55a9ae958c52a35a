package models

type CategoryID string

const (
	CategoryRestaurant CategoryID = "restaurant"
	CategoryCafe       CategoryID = "cafe"
	CategoryHotel      CategoryID = "hotel"
	CategoryTravel     CategoryID = "travel"
	CategoryExperience CategoryID = "experience"
	CategoryActivity   CategoryID = "activity"
	CategoryOther      CategoryID = "other"
)

// CategoryDef is the display metadata for one category.
type CategoryDef struct {
	ID       CategoryID
	Emoji    string
	LabelKey string // i18n key, e.g. "categories.restaurant"
}

// Categories is the fixed, ordered registry of entry categories.
var Categories = []CategoryDef{
	{ID: CategoryRestaurant, Emoji: "🍽️", LabelKey: "categories.restaurant"},
	{ID: CategoryCafe, Emoji: "☕", LabelKey: "categories.cafe"},
	{ID: CategoryHotel, Emoji: "🏨", LabelKey: "categories.hotel"},
	{ID: CategoryTravel, Emoji: "✈️", LabelKey: "categories.travel"},
	{ID: CategoryExperience, Emoji: "🎭", LabelKey: "categories.experience"},
	{ID: CategoryActivity, Emoji: "🏃", LabelKey: "categories.activity"},
	{ID: CategoryOther, Emoji: "📍", LabelKey: "categories.other"},
}

func IsCategoryID(v CategoryID) bool {
	for _, c := range Categories {
		if c.ID == v {
			return true
		}
	}
	return false
}

// NormalizeCategory coerces an untrusted category value into the closed set,
// falling back to the catch-all "other".
func NormalizeCategory(v CategoryID) CategoryID {
	if IsCategoryID(v) {
		return v
	}
	return CategoryOther
}

// CategoryByID returns the registry definition for a (normalized) category.
func CategoryByID(v CategoryID) CategoryDef {
	for _, c := range Categories {
		if c.ID == v {
			return c
		}
	}
	return Categories[len(Categories)-1]
}
