package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCategoryAndActionIndependent(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("I want to buy a laptop")

	assert.Equal(t, CategoryElectronics, result.Category)
	assert.Greater(t, result.CategoryScore, 0)
	assert.Equal(t, ActionAddToCart, result.Action)
	assert.Greater(t, result.ActionScore, 0)
}

func TestClassifyCategoryWithoutAction(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("laptop")

	assert.Equal(t, CategoryElectronics, result.Category)
	assert.Empty(t, result.Action)
	assert.Zero(t, result.ActionScore)
}

func TestClassifyActionWithoutCategory(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("where is it")

	assert.Equal(t, ActionSearch, result.Action)
	assert.Empty(t, result.Category)
	assert.Zero(t, result.CategoryScore)
}

func TestClassifyNoMatch(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{"", "   ", "xyzzy", "こんにちは", "🛒🛒🛒"} {
		result := c.Classify(input)
		assert.Empty(t, result.Category, "input %q", input)
		assert.Zero(t, result.CategoryScore, "input %q", input)
		assert.Empty(t, result.Action, "input %q", input)
		assert.Zero(t, result.ActionScore, "input %q", input)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, c.Classify("LAPTOP"), c.Classify("laptop"))
}

func TestClassifySubstringMatching(t *testing.T) {
	c := NewClassifier()

	// "phone" is matched inside "smartphone"; no word boundaries.
	result := c.Classify("my smartphone broke")

	assert.Equal(t, CategoryElectronics, result.Category)
}

func TestClassifyTieBreakDeclaredOrder(t *testing.T) {
	c := NewClassifier()

	// One keyword hit each for electronics ("phone") and food ("meal");
	// electronics is declared first so it wins the tie.
	result := c.Classify("phone meal")

	assert.Equal(t, CategoryElectronics, result.Category)
	assert.Equal(t, 1, result.CategoryScore)
}

func TestClassifyHigherScoreWins(t *testing.T) {
	c := NewClassifier()

	// Two food hits beat one electronics hit regardless of declared order.
	result := c.Classify("phone snack meal")

	assert.Equal(t, CategoryFood, result.Category)
	assert.Equal(t, 2, result.CategoryScore)
}

func TestClassifyKeywordCountsOncePerPresence(t *testing.T) {
	c := NewClassifier()

	once := c.Classify("laptop")
	twice := c.Classify("laptop laptop laptop")

	assert.Equal(t, once.CategoryScore, twice.CategoryScore)
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()

	first := c.Classify("show me some fresh vegetables and fruit")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.Classify("show me some fresh vegetables and fruit"))
	}
}

func TestCategoriesDeclaredOrder(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, []Category{
		CategoryElectronics,
		CategoryFood,
		CategoryClothing,
		CategoryMedicine,
		CategoryHousehold,
		CategoryStationery,
		CategoryBooks,
		CategorySports,
	}, c.Categories())
}

func TestCategoryKeywordsCopied(t *testing.T) {
	c := NewClassifier()

	keywords := c.CategoryKeywords(CategoryElectronics)
	assert.NotEmpty(t, keywords)

	keywords[0] = "mutated"
	assert.NotEqual(t, "mutated", c.CategoryKeywords(CategoryElectronics)[0])
}
