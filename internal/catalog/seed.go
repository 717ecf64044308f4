package catalog

import "github.com/pocketangadi/storefront/internal/domain"

// SeedProducts is the default catalog used when the store comes up empty.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Premium Wireless Headphones",
			Price:         16599,
			OriginalPrice: 20749,
			Rating:        4.8,
			Reviews:       127,
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop"},
			Category:      "Electronics",
			Store:         "AudioTech Pro",
			FreeShipping:  true,
			Stock:         50,
			Status:        domain.ProductStatusActive,
			Description:   "Crystal-clear audio and superior comfort in a wireless package.",
			Features:      []string{"Noise cancellation", "30-hour battery", "Quick charge"},
		},
		{
			ID:            "2",
			Name:          "Smart Fitness Watch",
			Price:         24899,
			OriginalPrice: 33199,
			Rating:        4.6,
			Reviews:       89,
			Image:         "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"},
			Category:      "Electronics",
			Store:         "FitTech",
			FreeShipping:  true,
			Stock:         30,
			Status:        domain.ProductStatusActive,
			Description:   "Track your fitness metrics in real time, 24/7.",
			Features:      []string{"Heart rate", "GPS", "Water-resistant"},
		},
		{
			ID:            "3",
			Name:          "Bluetooth Speaker",
			Price:         6639,
			OriginalPrice: 8299,
			Rating:        4.4,
			Reviews:       203,
			Image:         "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop"},
			Category:      "Electronics",
			Store:         "SoundWave",
			Stock:         0,
			Status:        domain.ProductStatusOutOfStock,
			Description:   "Rich, room-filling sound in a portable form.",
			Features:      []string{"Bluetooth 5.0", "12-hour playtime"},
		},
		{
			ID:            "4",
			Name:          "Designer Backpack",
			Price:         7479,
			OriginalPrice: 9960,
			Rating:        4.7,
			Reviews:       156,
			Image:         "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop"},
			Category:      "Fashion",
			Store:         "Urban Style",
			FreeShipping:  true,
			Stock:         20,
			Status:        domain.ProductStatusActive,
			Description:   "Stylish and spacious, perfect for work or weekend.",
			Features:      []string{"Water-resistant", "Laptop compartment"},
		},
		{
			ID:            "5",
			Name:          "Coffee Maker Pro",
			Price:         12459,
			OriginalPrice: 16599,
			Rating:        4.5,
			Reviews:       92,
			Image:         "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=400&fit=crop"},
			Category:      "Home & Garden",
			Store:         "Kitchen Essentials",
			FreeShipping:  true,
			Stock:         15,
			Status:        domain.ProductStatusActive,
			Description:   "Barista-style coffee at home in 3 easy steps.",
			Features:      []string{"Programmable", "Built-in grinder"},
		},
		{
			ID:            "6",
			Name:          "Running Shoes",
			Price:         10799,
			OriginalPrice: 13280,
			Rating:        4.6,
			Reviews:       234,
			Image:         "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
			Images:        []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop"},
			Category:      "Sports",
			Store:         "SportMax",
			FreeShipping:  true,
			Stock:         40,
			Status:        domain.ProductStatusActive,
			Description:   "Lightweight comfort for daily training.",
			Features:      []string{"Breathable mesh", "Cushioned sole"},
		},
	}
}
