package catalogService

import "ShopSmartGolang/internal/entity"

func getStaticBooks() []entity.Product {
	return []entity.Product{
		{
			ID:          "books-1",
			Title:       "The Art of Coding",
			Price:       1499,
			Description: "Comprehensive guide to programming fundamentals and best practices",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1532012197267-da84d127e765?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-2",
			Title:       "Modern Web Development",
			Price:       1799,
			Description: "Latest techniques and frameworks for modern web development",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-3",
			Title:       "Business Strategy",
			Price:       1299,
			Description: "Strategic thinking and planning for business success",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1589998059171-988d887df646?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-4",
			Title:       "Healthy Living Cookbook",
			Price:       1099,
			Description: "Nutritious and delicious recipes for a healthy lifestyle",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1476275466078-4007374efbbe?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-5",
			Title:       "Science Fiction Anthology",
			Price:       899,
			Description: "Collection of award-winning science fiction short stories",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1518744386442-2d48ac47a7eb?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-6",
			Title:       "Financial Freedom",
			Price:       1399,
			Description: "Guide to personal finance and investment strategies",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "books-7",
			Title:       "World History Encyclopedia",
			Price:       2499,
			Description: "Comprehensive illustrated history of world civilizations",
			Category:    "books",
			Image:       "https://images.unsplash.com/photo-1580674684081-7617fbf3d745?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}
