package filtering

import (
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func price(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// catalog mixes all three attribute-carrying product shapes.
func catalog() []models.Product {
	return []models.Product{
		{
			ID:       uuid.MustParse("00000000-0000-7000-8000-000000000001"),
			Name:     "Acme One",
			Brand:    "Acme",
			Category: "Mobiles",
			Price:    100, DiscountPrice: price(80),
			Rating: 4.2, Stock: 3,
			Variant: models.ProductVariant{
				Storage: []string{"128GB", " 256GB "},
				Colors:  []string{"Black", "Blue"},
			},
		},
		{
			ID:       uuid.MustParse("00000000-0000-7000-8000-000000000002"),
			Name:     "Zeta Max",
			Brand:    "Zeta",
			Category: "mobiles",
			Price:    200,
			Rating:   3.9, Stock: 0,
			ValidOptions: models.ValidOptionList{
				{"storage": "256GB", "ram": "8GB", "colors": "Black", "price": 200.0, "stock": 2.0},
				{"storage": "512GB", "ram": "12GB", "colors": "Black", "price": 260.0, "discounted_price": 240.0},
				{"display_size": "6.7 inch", "product_id": "zeta-max", "custom_keys": "x"},
			},
		},
		{
			ID:       uuid.MustParse("00000000-0000-7000-8000-000000000003"),
			Name:     "Nova Watch",
			Brand:    "Nova",
			Category: "Smart Watches",
			Price:    50, DiscountPrice: price(50),
			Rating: 2.5, Stock: 10,
			Attributes: datatypes.JSONMap{
				"strap":  "Silicone",
				"empty":  "   ",
				"weight": 32,
				"id":     "should-not-facet",
			},
		},
		{
			ID:       uuid.MustParse("00000000-0000-7000-8000-000000000004"),
			Name:     "Plain Cable",
			Brand:    "Acme",
			Category: "Accessories",
			Price:    10,
			Stock:    1,
		},
	}
}
