package catalogService

import (
	"fmt"
	"math"

	"ShopSmartGolang/internal/entity"
)

var (
	variationColors = []string{"Red", "Blue", "Black", "White", "Green", "Purple", "Yellow", "Orange", "Pink", "Gray"}
	variationSizes  = []string{"Small", "Medium", "Large", "XL", "XXL"}
	variationModels = []string{"Standard", "Pro", "Ultra", "Lite", "Plus", "Max", "Mini"}
	variationYears  = []int{2022, 2023, 2024, 2025}
)

// expandProductSet grows the catalog past a thousand entries by deriving
// templated variations from each base product. Base products come first,
// variations after, so the "first N" selections always favor the originals.
func expandProductSet(baseProducts []entity.Product) []entity.Product {
	expanded := make([]entity.Product, 0, len(baseProducts)*10)
	expanded = append(expanded, baseProducts...)

	for _, product := range baseProducts {
		expanded = append(expanded, generateProductVariations(product)...)
	}

	return expanded
}

func generateProductVariations(base entity.Product) []entity.Product {
	switch base.Category {
	case "electronics":
		return electronicsVariations(base)
	case "clothing":
		return clothingVariations(base)
	default:
		return genericVariations(base)
	}
}

func electronicsVariations(base entity.Product) []entity.Product {
	var variations []entity.Product

	for modelIndex, model := range variationModels {
		for yearIndex, year := range variationYears {
			variations = append(variations, entity.Product{
				ID:          fmt.Sprintf("%s-%s-%d-%d-%d", base.ID, model, year, modelIndex, yearIndex),
				Title:       fmt.Sprintf("%s %s (%d)", base.Title, model, year),
				Price:       scalePrice(base.Price, 1+float64(modelIndex)*0.2+float64(yearIndex)*0.1),
				Description: fmt.Sprintf("%s version of %s. Released in %d.", model, base.Description, year),
				Category:    base.Category,
				Image:       base.Image,
			})
		}
	}

	return variations
}

func clothingVariations(base entity.Product) []entity.Product {
	var variations []entity.Product

	for colorIndex, color := range variationColors {
		for sizeIndex, size := range variationSizes {
			variations = append(variations, entity.Product{
				ID:          fmt.Sprintf("%s-%s-%s-%d-%d", base.ID, color, size, colorIndex, sizeIndex),
				Title:       fmt.Sprintf("%s - %s, %s", base.Title, color, size),
				Price:       scalePrice(base.Price, 1+float64(sizeIndex)*0.1),
				Description: fmt.Sprintf("%s Available in %s color and %s size.", base.Description, color, size),
				Category:    base.Category,
				Image:       base.Image,
			})
		}
	}

	return variations
}

func genericVariations(base entity.Product) []entity.Product {
	var variations []entity.Product

	for i := 1; i <= 10; i++ {
		variations = append(variations, entity.Product{
			ID:          fmt.Sprintf("%s-variant-%d", base.ID, i),
			Title:       fmt.Sprintf("%s - Variant %d", base.Title, i),
			Price:       scalePrice(base.Price, 1+float64(i)*0.05),
			Description: fmt.Sprintf("%s Variant %d with additional features.", base.Description, i),
			Category:    base.Category,
			Image:       base.Image,
		})
	}

	return variations
}

func scalePrice(price int, factor float64) int {
	return int(math.Round(float64(price) * factor))
}
