package api

// Cuisines is the service's cuisine vocabulary. Submissions must use one of
// these values verbatim.
var Cuisines = []string{
	"North American",
	"Asian",
	"European",
	"African",
	"Fusion & Inspired",
	"Latin American",
	"Mediterranean",
	"Middle Eastern",
	"World / Fusion",
}

// Categories is the service's category vocabulary. A submission carries at
// least one.
var Categories = []string{
	"Bread",
	"Breakfast & Brunch",
	"Drinks",
	"Main Course",
	"Pantry & Ingredients",
	"Salad",
	"Sandwich",
	"Sauce",
	"Side Dish",
	"Soup",
	"Spice Mix",
	"Starters & Snacks",
	"Sweets & Desserts",
}

// ValidCuisine reports whether s is a known cuisine value.
func ValidCuisine(s string) bool {
	return contains(Cuisines, s)
}

// ValidCategory reports whether s is a known category value.
func ValidCategory(s string) bool {
	return contains(Categories, s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
