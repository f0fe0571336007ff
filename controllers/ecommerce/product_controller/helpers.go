package product_controller

import (
	"strconv"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
)

var catalogService *services.CatalogService

// InitCatalogService wires the catalog used by every storefront product handler.
func InitCatalogService(s *services.CatalogService) {
	catalogService = s
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices one page of thin product cards out of an already filtered list.
func paginate(products []models.Product, page, limit int) []models.StorefrontProductResponse {
	out := make([]models.StorefrontProductResponse, 0, limit)
	// Compare page counts before multiplying so huge pages cannot overflow.
	if page > (len(products)+limit-1)/limit {
		return out
	}
	start := (page - 1) * limit
	end := min(start+limit, len(products))
	for _, p := range products[start:end] {
		out = append(out, models.NewStorefrontProductResponse(p))
	}
	return out
}
