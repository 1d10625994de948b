package nlp

// Category is one of the fixed product groupings of the storefront catalog.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFood        Category = "food"
	CategoryClothing    Category = "clothing"
	CategoryMedicine    Category = "medicine"
	CategoryHousehold   Category = "household"
	CategoryStationery  Category = "stationery"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
)

// Action is a recognized shopping intent.
type Action string

const (
	ActionAddToCart Action = "add_to_cart"
	ActionSearch    Action = "search"
	ActionExplore   Action = "explore"
)

// ClassificationResult carries the best-matching category and action for one
// input. A zero score means no match; Category/Action are then empty.
type ClassificationResult struct {
	Category      Category `json:"category,omitempty"`
	CategoryScore int      `json:"category_score"`
	Action        Action   `json:"action,omitempty"`
	ActionScore   int      `json:"action_score"`
}

type IClassifier interface {
	Classify(input string) ClassificationResult
	Categories() []Category
	CategoryKeywords(category Category) []string
}
