package fixture

import (
	domcategory "example.com/sector17-directory/internal/domain/category"
	domproduct "example.com/sector17-directory/internal/domain/product"
	domshop "example.com/sector17-directory/internal/domain/shop"
)

// DefaultAdminEmail and DefaultAdminPassword form the seeded admin login.
const (
	DefaultAdminEmail    = "admin@sector17.com"
	DefaultAdminPassword = "admin123"
)

// Sample returns the embedded Sector-17 catalog. Every call returns fresh slices.
func Sample() Dataset {
	return Dataset{
		Shops:      sampleShops(),
		Products:   sampleProducts(),
		Categories: sampleCategories(),
	}
}

func sampleCategories() []domcategory.Category {
	return []domcategory.Category{
		{ID: "1", Name: "Clothing"},
		{ID: "2", Name: "Electronics"},
		{ID: "3", Name: "Food"},
		{ID: "4", Name: "Books"},
		{ID: "5", Name: "Footwear"},
		{ID: "6", Name: "Accessories"},
		{ID: "7", Name: "Home Decor"},
	}
}

func sampleShops() []domshop.Shop {
	return []domshop.Shop{
		{
			ID:          "1",
			Name:        "Gupta Garments",
			Category:    "Clothing",
			Description: "Premium ethnic and western wear for all occasions. Family-owned business since 1985.",
			Address:     "Shop 15, Sector-17, Chandigarh",
			Contact:     "+91-9876543210",
			ImageURL:    "https://images.unsplash.com/photo-1571854003494-ab1b14c21249?w=800",
		},
		{
			ID:          "2",
			Name:        "Tech Galaxy",
			Category:    "Electronics",
			Description: "Latest gadgets, smartphones, and electronics at competitive prices.",
			Address:     "Shop 22, Sector-17, Chandigarh",
			Contact:     "+91-9876543211",
			ImageURL:    "https://images.unsplash.com/photo-1660224319984-4af12c1a469b?w=800",
		},
		{
			ID:          "3",
			Name:        "Sharma Sweets",
			Category:    "Food",
			Description: "Traditional Indian sweets and snacks. Famous for our ladoos and barfis.",
			Address:     "Shop 8, Sector-17, Chandigarh",
			Contact:     "+91-9876543212",
			ImageURL:    "https://images.unsplash.com/photo-1640720707320-af5502f2a3f5?w=800",
		},
		{
			ID:          "4",
			Name:        "Book Haven",
			Category:    "Books",
			Description: "Vast collection of fiction, non-fiction, and academic books.",
			Address:     "Shop 31, Sector-17, Chandigarh",
			Contact:     "+91-9876543213",
			ImageURL:    "https://images.unsplash.com/photo-1740064038378-b3b049c98c39?w=800",
		},
		{
			ID:          "5",
			Name:        "Footwear Palace",
			Category:    "Footwear",
			Description: "Branded shoes, sandals, and sports footwear for men, women, and kids.",
			Address:     "Shop 19, Sector-17, Chandigarh",
			Contact:     "+91-9876543214",
			ImageURL:    "https://images.unsplash.com/photo-1571854003494-ab1b14c21249?w=800",
		},
		{
			ID:          "6",
			Name:        "Style Studio",
			Category:    "Accessories",
			Description: "Trendy accessories including bags, watches, jewelry, and sunglasses.",
			Address:     "Shop 27, Sector-17, Chandigarh",
			Contact:     "+91-9876543215",
			ImageURL:    "https://images.unsplash.com/photo-1660224319984-4af12c1a469b?w=800",
		},
	}
}

func sampleProducts() []domproduct.Product {
	return []domproduct.Product{
		{
			ID:          "1",
			Name:        "Cotton Kurta Set",
			Description: "Comfortable cotton kurta with matching pajama. Perfect for summer.",
			Price:       1499,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=500",
			ShopID:      "1",
			ShopName:    "Gupta Garments",
		},
		{
			ID:          "2",
			Name:        "Silk Saree",
			Description: "Elegant silk saree with traditional border work.",
			Price:       3999,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500",
			ShopID:      "1",
			ShopName:    "Gupta Garments",
		},
		{
			ID:          "3",
			Name:        "Wireless Earbuds",
			Description: "Premium sound quality with active noise cancellation.",
			Price:       2999,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1590658165737-15a047b7a0b8?w=500",
			ShopID:      "2",
			ShopName:    "Tech Galaxy",
		},
		{
			ID:          "4",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage and 48MP camera.",
			Price:       24999,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
			ShopID:      "2",
			ShopName:    "Tech Galaxy",
		},
		{
			ID:          "5",
			Name:        "Kaju Katli (500g)",
			Description: "Premium cashew sweets made with pure ghee.",
			Price:       450,
			Category:    "Food",
			ImageURL:    "https://images.unsplash.com/photo-1640720707320-af5502f2a3f5?w=500",
			ShopID:      "3",
			ShopName:    "Sharma Sweets",
		},
		{
			ID:          "6",
			Name:        "Gulab Jamun Box",
			Description: "Soft and delicious gulab jamuns, pack of 12.",
			Price:       180,
			Category:    "Food",
			ImageURL:    "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=500",
			ShopID:      "3",
			ShopName:    "Sharma Sweets",
		},
		{
			ID:          "7",
			Name:        "The Great Gatsby",
			Description: "Classic novel by F. Scott Fitzgerald.",
			Price:       299,
			Category:    "Books",
			ImageURL:    "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=500",
			ShopID:      "4",
			ShopName:    "Book Haven",
		},
		{
			ID:          "8",
			Name:        "Atomic Habits",
			Description: "Bestselling self-help book by James Clear.",
			Price:       450,
			Category:    "Books",
			ImageURL:    "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?w=500",
			ShopID:      "4",
			ShopName:    "Book Haven",
		},
		{
			ID:          "9",
			Name:        "Running Shoes",
			Description: "Lightweight sports shoes with excellent grip.",
			Price:       2499,
			Category:    "Footwear",
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			ShopID:      "5",
			ShopName:    "Footwear Palace",
		},
		{
			ID:          "10",
			Name:        "Casual Sneakers",
			Description: "Trendy sneakers for everyday wear.",
			Price:       1799,
			Category:    "Footwear",
			ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			ShopID:      "5",
			ShopName:    "Footwear Palace",
		},
		{
			ID:          "11",
			Name:        "Leather Wallet",
			Description: "Genuine leather wallet with multiple card slots.",
			Price:       899,
			Category:    "Accessories",
			ImageURL:    "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500",
			ShopID:      "6",
			ShopName:    "Style Studio",
		},
		{
			ID:          "12",
			Name:        "Designer Sunglasses",
			Description: "UV protection sunglasses with polarized lenses.",
			Price:       1299,
			Category:    "Accessories",
			ImageURL:    "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=500",
			ShopID:      "6",
			ShopName:    "Style Studio",
		},
		{
			ID:          "13",
			Name:        "Formal Shirt",
			Description: "Premium quality formal shirt for office wear.",
			Price:       1199,
			Category:    "Clothing",
			ImageURL:    "https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500",
			ShopID:      "1",
			ShopName:    "Gupta Garments",
		},
		{
			ID:          "14",
			Name:        "Bluetooth Speaker",
			Description: "Portable wireless speaker with 12-hour battery life.",
			Price:       1899,
			Category:    "Electronics",
			ImageURL:    "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500",
			ShopID:      "2",
			ShopName:    "Tech Galaxy",
		},
		{
			ID:          "15",
			Name:        "Samosa (6 pcs)",
			Description: "Crispy samosas filled with spiced potatoes.",
			Price:       60,
			Category:    "Food",
			ImageURL:    "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=500",
			ShopID:      "3",
			ShopName:    "Sharma Sweets",
		},
	}
}
