package domain

import "github.com/shopspring/decimal"

var demoSizes = []string{"S", "M", "L", "XL"}

// DemoProducts is the fixed catalogue written by the seed operation.
func DemoProducts() []Product {
	return []Product{
		{
			Title:       "Classic DYFN Tee",
			Description: "Premium cotton t-shirt with DYFN logo.",
			Price:       decimal.RequireFromString("24.99"),
			Category:    "tshirt",
			Image:       "https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
			Sizes:       append([]string(nil), demoSizes...),
		},
		{
			Title:       "Oversized DYFN Tee",
			Description: "Relaxed fit, ultra-soft fabric.",
			Price:       decimal.RequireFromString("29.99"),
			Category:    "tshirt",
			Image:       "https://images.unsplash.com/photo-1520975916090-3105956dac38?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
			Sizes:       append([]string(nil), demoSizes...),
		},
		{
			Title:       "DYFN Essential Hoodie",
			Description: "Midweight fleece hoodie for everyday wear.",
			Price:       decimal.RequireFromString("49.99"),
			Category:    "hoodie",
			Image:       "https://images.unsplash.com/photo-1544441893-675973e31985?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
			Sizes:       append([]string(nil), demoSizes...),
		},
		{
			Title:       "DYFN Heavyweight Hoodie",
			Description: "Thick, cozy, perfect for cold days.",
			Price:       decimal.RequireFromString("59.99"),
			Category:    "hoodie",
			Image:       "https://images.unsplash.com/photo-1548883354-7622d03aca9b?q=80&w=1200&auto=format&fit=crop",
			InStock:     true,
			Sizes:       append([]string(nil), demoSizes...),
		},
	}
}
