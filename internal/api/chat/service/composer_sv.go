package chatService

import (
	"fmt"
	"strings"

	"ShopSmartGolang/internal/entity"
	"ShopSmartGolang/pkg/nlp"
)

// composedReply is the outcome of one pass through the reply decision chain.
// cartProduct is set only by the add-to-cart branch; the conversation layer is
// responsible for emitting the matching cart event together with the reply.
type composedReply struct {
	text               string
	products           []entity.Product
	action             entity.MessageAction
	suggestions        []entity.QuickReply
	replaceSuggestions bool
	cartProduct        *entity.Product
}

// composeReply walks the assistant's decision chain top to bottom; exactly one
// branch produces the reply. Intent branches needing a category come first,
// then the keyword-trigger branches, then the default.
func (s *chatService) composeReply(input string, catalog []entity.Product) composedReply {
	classification := s.classifier.Classify(input)
	lowered := strings.ToLower(input)

	// Add-to-cart intent with a matched category. When the category has no
	// product in the current catalog the remaining intent branches are skipped
	// and evaluation resumes at the recommendation trigger.
	skipIntentRules := false
	if classification.Action == nlp.ActionAddToCart && classification.Category != "" {
		if product, ok := firstInCategory(catalog, string(classification.Category)); ok {
			return composedReply{
				text:        fmt.Sprintf("I've added %s to your cart for %s. Would you like to continue shopping?", product.Title, s.utils.FormatRupees(product.Price)),
				products:    []entity.Product{product},
				action:      entity.MessageActionAddedToCart,
				cartProduct: &product,
			}
		}
		skipIntentRules = true
	}

	if !skipIntentRules && classification.Category != "" {
		category := string(classification.Category)

		switch classification.Action {
		case nlp.ActionSearch:
			return composedReply{
				text:     fmt.Sprintf("Here are some %s products I found for you:", category),
				products: filterByCategory(catalog, category, 3),
			}
		case nlp.ActionExplore:
			return composedReply{
				text:     fmt.Sprintf("Here's a selection of our %s products:", category),
				products: filterByCategory(catalog, category, 5),
			}
		default:
			return composedReply{
				text:     fmt.Sprintf("Here are some %s products you might like:", category),
				products: filterByCategory(catalog, category, 3),
			}
		}
	}

	if strings.Contains(lowered, "recommend") || strings.Contains(lowered, "suggest") || strings.Contains(lowered, "show me") {
		return composedReply{
			text:               "What kind of products are you interested in? Here are some options:",
			suggestions:        recommendationSuggestions(catalog),
			replaceSuggestions: true,
		}
	}

	if strings.Contains(lowered, "cart") || strings.Contains(lowered, "basket") || strings.Contains(lowered, "shopping list") {
		return composedReply{
			text: "You can view your cart by clicking the cart icon in the top right corner. Would you like to add something to your cart?",
		}
	}

	if classification.Action == nlp.ActionSearch {
		return composedReply{
			text:               "What category would you like to search in?",
			suggestions:        searchSuggestions(),
			replaceSuggestions: true,
		}
	}

	return composedReply{
		text: "I can help you find products in electronics, food, clothing, medicine, household goods, and stationery. I can also add items to your cart. What would you like to do?",
	}
}

func recommendationSuggestions(catalog []entity.Product) []entity.QuickReply {
	return []entity.QuickReply{
		{Label: "Show me electronics", Category: "electronics", Products: filterByCategory(catalog, "electronics", 3)},
		{Label: "I need clothing items", Category: "clothing", Products: filterByCategory(catalog, "clothing", 3)},
		{Label: "Show household products", Category: "household", Products: filterByCategory(catalog, "household", 3)},
	}
}

// searchSuggestions deliberately covers six of the eight categories; the
// storefront never offered search shortcuts for books or sports.
func searchSuggestions() []entity.QuickReply {
	return []entity.QuickReply{
		{Label: "Search electronics", Category: "electronics"},
		{Label: "Search clothing", Category: "clothing"},
		{Label: "Search food items", Category: "food"},
		{Label: "Search medicine", Category: "medicine"},
		{Label: "Search household goods", Category: "household"},
		{Label: "Search stationery", Category: "stationery"},
	}
}

func firstInCategory(catalog []entity.Product, category string) (entity.Product, bool) {
	for _, product := range catalog {
		if strings.Contains(strings.ToLower(product.Category), category) {
			return product, true
		}
	}
	return entity.Product{}, false
}

func filterByCategory(catalog []entity.Product, category string, limit int) []entity.Product {
	var matched []entity.Product
	for _, product := range catalog {
		if strings.Contains(strings.ToLower(product.Category), category) {
			matched = append(matched, product)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched
}
