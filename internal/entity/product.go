package entity

// Product is an immutable catalog record. Price is a whole-rupee amount.
// Category is stored lower-cased so substring matching against taxonomy
// identifiers works without normalization at the call site.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}
