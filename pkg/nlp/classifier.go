package nlp

import (
	"strings"
)

type classifier struct{}

func NewClassifier() IClassifier {
	return &classifier{}
}

// Classify scores the input against both taxonomies and returns the best
// match for each, independently. Matching is plain case-insensitive substring
// presence: no tokenization or word-boundary checks, so "smartphone" matches
// the "phone" keyword. Each keyword counts at most once regardless of how
// often it occurs.
func (c *classifier) Classify(input string) ClassificationResult {
	lowered := strings.ToLower(input)

	result := ClassificationResult{}

	for _, category := range categoryOrder {
		score := countKeywordHits(lowered, categoryKeywords[category])
		if score > result.CategoryScore {
			result.CategoryScore = score
			result.Category = category
		}
	}

	for _, action := range actionOrder {
		score := countKeywordHits(lowered, actionKeywords[action])
		if score > result.ActionScore {
			result.ActionScore = score
			result.Action = action
		}
	}

	return result
}

func countKeywordHits(lowered string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			score++
		}
	}
	return score
}

func (c *classifier) Categories() []Category {
	categories := make([]Category, len(categoryOrder))
	copy(categories, categoryOrder)
	return categories
}

func (c *classifier) CategoryKeywords(category Category) []string {
	keywords := make([]string, len(categoryKeywords[category]))
	copy(keywords, categoryKeywords[category])
	return keywords
}
