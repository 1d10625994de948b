package nlp

// The taxonomies are static and read-only after init. Slice order is
// significant: score ties resolve to the earlier declared entry, so the
// declaration order below is part of the contract.

var categoryOrder = []Category{
	CategoryElectronics,
	CategoryFood,
	CategoryClothing,
	CategoryMedicine,
	CategoryHousehold,
	CategoryStationery,
	CategoryBooks,
	CategorySports,
}

var categoryKeywords = map[Category][]string{
	CategoryElectronics: {"electronics", "gadget", "phone", "laptop", "computer", "tv", "headphone", "camera", "tech", "electronic"},
	CategoryFood:        {"food", "snack", "drink", "grocery", "meal", "fruit", "vegetable", "meat", "dairy", "eat", "edible"},
	CategoryClothing:    {"clothing", "clothes", "shirt", "pant", "dress", "jacket", "shoe", "fashion", "wear", "outfit", "apparel", "garment"},
	CategoryMedicine:    {"medicine", "drug", "health", "pill", "vitamin", "supplement", "pharmacy", "medical", "healthcare", "prescription"},
	CategoryHousehold:   {"household", "home", "kitchen", "bathroom", "furniture", "cleaning", "decor", "appliance", "house", "living"},
	CategoryStationery:  {"stationery", "office", "pen", "paper", "notebook", "pencil", "marker", "school", "supply", "write", "drawing"},
	CategoryBooks:       {"book", "novel", "textbook", "reading", "literature", "fiction", "nonfiction", "cookbook", "biography", "history", "science", "business", "self-help", "education"},
	CategorySports:      {"sport", "fitness", "exercise", "gym", "yoga", "running", "swimming", "basketball", "tennis", "cycling", "workout", "athletic", "training", "equipment"},
}

var actionOrder = []Action{
	ActionAddToCart,
	ActionSearch,
	ActionExplore,
}

var actionKeywords = map[Action][]string{
	ActionAddToCart: {"add to cart", "buy", "purchase", "get", "order", "want", "add", "cart"},
	ActionSearch:    {"search", "find", "look for", "looking for", "where is", "where are", "locate", "show me"},
	ActionExplore:   {"explore", "browse", "show all", "display", "list", "view", "see"},
}
