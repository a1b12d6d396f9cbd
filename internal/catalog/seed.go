package catalog

import "github.com/nisuz/decorhavenstore/internal/domain"

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Beige Linen Throw Pillow",
			Description: "Elegant hand-crafted linen throw pillow with tassels, perfect for adding texture to your couch or bed.",
			Price:       24.99,
			Images:      []string{"https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&q=80&w=1000"},
			Category:    "pillows",
			Stock:       25,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Ceramic Plant Pot",
			Description: "Beautiful ceramic pot for your indoor plants. Features a minimalist design with drainage holes.",
			Price:       19.95,
			Images:      []string{"https://images.unsplash.com/photo-1485955900006-10f4d324d411?auto=format&fit=crop&q=80&w=1000"},
			Category:    "planters",
			Stock:       30,
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Macrame Wall Hanging",
			Description: "Handmade macrame wall hanging that adds bohemian charm to any room in your home.",
			Price:       45.50,
			Images:      []string{"https://images.unsplash.com/photo-1629013410237-051a2773296f?auto=format&fit=crop&q=80&w=1000"},
			Category:    "wall-decor",
			Stock:       15,
			Featured:    true,
		},
		{
			ID:          "4",
			Name:        "Scented Soy Candle",
			Description: "Hand-poured soy wax candle with essential oils and wooden wick. Burns clean for up to 40 hours.",
			Price:       18.99,
			Images:      []string{"https://images.unsplash.com/photo-1603006905393-0af98d320ad3?auto=format&fit=crop&q=80&w=1000"},
			Category:    "candles",
			Stock:       40,
		},
		{
			ID:          "5",
			Name:        "Terrazzo Coasters (Set of 4)",
			Description: "Modern terrazzo coasters made from sustainable materials. Protects your furniture in style.",
			Price:       15.95,
			Images:      []string{"https://images.unsplash.com/photo-1614176808776-b450a282e655?auto=format&fit=crop&q=80&w=1000"},
			Category:    "tableware",
			Stock:       20,
		},
		{
			ID:          "6",
			Name:        "Woven Basket Set",
			Description: "Set of 3 nesting baskets made from natural materials. Perfect for storage and organization.",
			Price:       35.00,
			Images:      []string{"https://images.unsplash.com/photo-1629393448042-4f85085e97e1?auto=format&fit=crop&q=80&w=1000"},
			Category:    "storage",
			Stock:       18,
			Featured:    true,
		},
		{
			ID:          "7",
			Name:        "Wooden Wall Shelf",
			Description: "Solid wood floating shelf with metal brackets. Adds storage and style to any wall.",
			Price:       29.99,
			Images:      []string{"https://images.unsplash.com/photo-1618220048045-10a6dbdf83e0?auto=format&fit=crop&q=80&w=1000"},
			Category:    "shelving",
			Stock:       12,
		},
		{
			ID:          "8",
			Name:        "Cotton Throw Blanket",
			Description: "Soft 100% cotton blanket with geometric design. Perfect for cool evenings or as a decorative accent.",
			Price:       39.95,
			Images:      []string{"https://images.unsplash.com/photo-1580997410245-4310dfcce75a?auto=format&fit=crop&q=80&w=1000"},
			Category:    "textiles",
			Stock:       22,
			Featured:    true,
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{
			ID:          "pillows",
			Name:        "Decorative Pillows",
			Image:       "https://images.unsplash.com/photo-1616486338812-3dadae4b4ace?auto=format&fit=crop&q=80&w=1000",
			Description: "Add comfort and style with our collection of decorative pillows",
		},
		{
			ID:          "planters",
			Name:        "Plant Pots & Planters",
			Image:       "https://images.unsplash.com/photo-1485955900006-10f4d324d411?auto=format&fit=crop&q=80&w=1000",
			Description: "Beautiful homes for your green friends",
		},
		{
			ID:          "wall-decor",
			Name:        "Wall Decor",
			Image:       "https://images.unsplash.com/photo-1629013410237-051a2773296f?auto=format&fit=crop&q=80&w=1000",
			Description: "Transform your walls with artwork, hangings, and more",
		},
		{
			ID:          "candles",
			Name:        "Candles & Scents",
			Image:       "https://images.unsplash.com/photo-1603006905393-0af98d320ad3?auto=format&fit=crop&q=80&w=1000",
			Description: "Create ambiance with our artisanal candles and diffusers",
		},
		{
			ID:          "tableware",
			Name:        "Tableware",
			Image:       "https://images.unsplash.com/photo-1614176808776-b450a282e655?auto=format&fit=crop&q=80&w=1000",
			Description: "Elevate your dining experience with our stylish tableware",
		},
		{
			ID:          "storage",
			Name:        "Storage & Organization",
			Image:       "https://images.unsplash.com/photo-1629393448042-4f85085e97e1?auto=format&fit=crop&q=80&w=1000",
			Description: "Stylish solutions for keeping your home organized",
		},
	}
}
