package catalogService

import "ShopSmartGolang/internal/entity"

func getStaticSports() []entity.Product {
	return []entity.Product{
		{
			ID:          "sports-1",
			Title:       "Yoga Mat Premium",
			Price:       1999,
			Description: "Non-slip eco-friendly yoga mat with alignment markings",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1592432678016-e910b452f9a2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "sports-2",
			Title:       "Fitness Tracker Pro",
			Price:       4999,
			Description: "Advanced fitness tracker with heart rate and sleep monitoring",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "sports-3",
			Title:       "Basketball Indoor/Outdoor",
			Price:       1499,
			Description: "Professional basketball suitable for indoor and outdoor play",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1519861531473-9200262188bf?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "sports-4",
			Title:       "Tennis Racket Set",
			Price:       3499,
			Description: "Professional tennis racket with balls and carrying case",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "sports-5",
			Title:       "Cycling Helmet",
			Price:       2499,
			Description: "Lightweight cycling helmet with adjustable fit system",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1557803175-2358b6ae2c3c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "sports-6",
			Title:       "Dumbbells Set 20kg",
			Price:       3999,
			Description: "Adjustable dumbbells set with storage rack",
			Category:    "sports",
			Image:       "https://images.unsplash.com/photo-1586401100295-7a8096fd231a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}
