package catalogService

import "ShopSmartGolang/internal/entity"

// Static fallback data, served whenever a category's remote feed is down and
// for the categories that have no public feed at all.

func getStaticElectronics() []entity.Product {
	return []entity.Product{
		{
			ID:          "electronics-1",
			Title:       "Smartphone X Pro",
			Price:       74999,
			Description: "Latest smartphone with 6.7\" OLED display, 5G, and 128GB storage",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "electronics-phone-1",
			Title:       "Galaxy Ultra S24",
			Price:       109999,
			Description: "Premium smartphone with 6.8\" Dynamic AMOLED display, 200MP camera, and 512GB storage",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1567581935884-3349723552ca?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "electronics-phone-2",
			Title:       "Pixel 8 Pro",
			Price:       82999,
			Description: "Google flagship with advanced AI features, 50MP camera system, and 120Hz display",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1606041008023-472dfb5e530f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "electronics-phone-3",
			Title:       "OnePlus 12",
			Price:       64999,
			Description: "Flagship killer with Snapdragon 8 Gen 3, 50MP Hasselblad camera, and 100W fast charging",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1585060544812-6b45742d762f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "electronics-2",
			Title:       "Laptop Ultra Slim",
			Price:       97499,
			Description: "Ultra-slim laptop with 16GB RAM, 512GB SSD, and 14\" display",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "electronics-laptop-1",
			Title:       "MacBook Pro M3 Max",
			Price:       249999,
			Description: "Professional laptop with M3 Max chip, 32GB unified memory, and 14\" Liquid Retina XDR display",
			Category:    "electronics",
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}

func getStaticClothing() []entity.Product {
	return []entity.Product{
		{
			ID:          "clothing-1",
			Title:       "Men's Casual T-Shirt",
			Price:       1874,
			Description: "Comfortable cotton t-shirt for everyday wear",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "clothing-2",
			Title:       "Women's Summer Dress",
			Price:       3749,
			Description: "Light and flowy summer dress with floral pattern",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1496747611176-843222e1e57c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "clothing-3",
			Title:       "Men's Slim-Fit Jeans",
			Price:       4499,
			Description: "Classic slim-fit jeans for a modern look",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "clothing-4",
			Title:       "Women's Leather Jacket",
			Price:       9749,
			Description: "Stylish leather jacket for all seasons",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "clothing-5",
			Title:       "Unisex Hoodie",
			Price:       2999,
			Description: "Comfortable hoodie for casual wear",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "clothing-6",
			Title:       "Women's Yoga Pants",
			Price:       2499,
			Description: "Stretchy and comfortable yoga pants for active lifestyle",
			Category:    "clothing",
			Image:       "https://images.unsplash.com/photo-1552881407-43a3e2c437e0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}

func getStaticFood() []entity.Product {
	return []entity.Product{
		{
			ID:          "food-1",
			Title:       "Organic Fruit Basket",
			Price:       2624,
			Description: "Assortment of fresh organic fruits",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1610832958506-aa56368176cf?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "food-2",
			Title:       "Gourmet Coffee Beans",
			Price:       1499,
			Description: "Premium coffee beans from sustainable sources",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "food-3",
			Title:       "Artisan Chocolate Box",
			Price:       2249,
			Description: "Handcrafted chocolates with various fillings",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1549007994-cb92caebd54b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "food-4",
			Title:       "Organic Pasta Set",
			Price:       1199,
			Description: "Set of organic pasta varieties",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1556761223-4c4282c73f77?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "food-5",
			Title:       "Spice Collection",
			Price:       1874,
			Description: "Collection of premium cooking spices",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1532336414038-cf19250c5757?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "food-6",
			Title:       "Organic Honey Jar",
			Price:       899,
			Description: "Pure organic honey from wildflower meadows",
			Category:    "food",
			Image:       "https://images.unsplash.com/photo-1587049352851-8d4e89133924?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}

func getStaticMedicine() []entity.Product {
	return []entity.Product{
		{
			ID:          "medicine-1",
			Title:       "Multivitamin Complex",
			Price:       1499,
			Description: "Daily multivitamin supplement for overall health",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "medicine-2",
			Title:       "First Aid Kit",
			Price:       2249,
			Description: "Comprehensive first aid kit for emergencies",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1603398938378-e54eab446dde?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "medicine-3",
			Title:       "Digital Thermometer",
			Price:       974,
			Description: "Accurate digital thermometer for temperature readings",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1588776814546-daab30f310ce?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "medicine-4",
			Title:       "Pain Relief Gel",
			Price:       749,
			Description: "Topical gel for muscle and joint pain relief",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1584308666999-b85cdf88d68f?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "medicine-5",
			Title:       "Herbal Sleep Aid",
			Price:       1124,
			Description: "Natural supplement to improve sleep quality",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1584362917165-526a968579e8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "medicine-6",
			Title:       "Immune Support Tablets",
			Price:       1299,
			Description: "Herbal supplement to boost immune system function",
			Category:    "medicine",
			Image:       "https://images.unsplash.com/photo-1550572017-edd951b55104?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}

func getStaticHousehold() []entity.Product {
	return []entity.Product{
		{
			ID:          "household-1",
			Title:       "Scented Candle Set",
			Price:       1874,
			Description: "Set of 3 premium scented candles",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1603913996638-c01100417b4a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "household-2",
			Title:       "Throw Pillow Covers",
			Price:       1499,
			Description: "Set of 2 decorative throw pillow covers",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1592789705501-f9ae4287c4a9?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "household-3",
			Title:       "Kitchen Utensil Set",
			Price:       2624,
			Description: "Complete set of stainless steel kitchen utensils",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1590794056226-79ef3a8147e1?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "household-4",
			Title:       "Bathroom Organizer",
			Price:       2249,
			Description: "Modern bathroom organizer for toiletries",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1595428774223-ef52624120d2?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "household-5",
			Title:       "Decorative Wall Clock",
			Price:       2999,
			Description: "Stylish wall clock for home decoration",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1594387695168-dce0ee92e60b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "household-6",
			Title:       "Bamboo Cutting Board",
			Price:       1799,
			Description: "Eco-friendly bamboo cutting board for kitchen use",
			Category:    "household",
			Image:       "https://images.unsplash.com/photo-1594282486552-05a3b6fbfdb0?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}

func getStaticStationery() []entity.Product {
	return []entity.Product{
		{
			ID:          "stationery-1",
			Title:       "Premium Notebook Set",
			Price:       1124,
			Description: "Set of 3 premium notebooks with lined pages",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1572726729207-a78d6feb18d7?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "stationery-2",
			Title:       "Fountain Pen",
			Price:       1874,
			Description: "Elegant fountain pen with smooth ink flow",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1583485088034-697b5bc54ccd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "stationery-3",
			Title:       "Desk Organizer",
			Price:       1499,
			Description: "Wooden desk organizer for office supplies",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "stationery-4",
			Title:       "Colored Pencil Set",
			Price:       974,
			Description: "Set of 24 premium colored pencils for artists",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1513542789411-b6a5d4f31634?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "stationery-5",
			Title:       "Sticky Notes Pack",
			Price:       599,
			Description: "Pack of colorful sticky notes in various sizes",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1586282391129-76a6df230234?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "stationery-6",
			Title:       "Leather Journal",
			Price:       2499,
			Description: "Handcrafted leather journal with refillable pages",
			Category:    "stationery",
			Image:       "https://images.unsplash.com/photo-1544112559-349e1e049fb4?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		},
	}
}
