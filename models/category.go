package models

// StorefrontCategory is a distinct product category with its product count.
// Slug is the route form of the name (spaces replaced by hyphens, lower case).
type StorefrontCategory struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

// StorefrontBrand is a distinct brand with its product count.
type StorefrontBrand struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// HomepageResponse aggregates everything the storefront homepage renders.
type HomepageResponse struct {
	Sections   []HomepageSection `json:"sections"`
	Banners    []Banner          `json:"banners"`
	Promotions []Promotion       `json:"promotions"`
}
