package product_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Paginated product listing narrowed by the shopper's filter selections. List parameters are repeatable or comma separated.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Route category; pins the listing to one category (hyphens match spaces)"
// @Param q query string false "Search in name, description and brand"
// @Param brand query []string false "Brands (repeatable)"
// @Param categories query []string false "Categories (repeatable, ignored when category is set)"
// @Param storage query []string false "Storage options (repeatable)"
// @Param ram query []string false "RAM options (repeatable)"
// @Param color query []string false "Colours (repeatable)"
// @Param attr query []string false "Dynamic option selections as key:value (repeatable)"
// @Param minPrice query number false "Minimum effective price (inclusive)"
// @Param maxPrice query number false "Maximum effective price (inclusive)"
// @Param rating query int false "Minimum star rating (0-5)"
// @Param inStock query bool false "Only products in stock"
// @Param outOfStock query bool false "Only products out of stock"
// @Param discount query int false "Minimum discount percent"
// @Param sortBy query string false "Sort order" Enums(popularity, price-low, price-high, rating) default(popularity)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	// Step 1: Parse filter selections and pagination
	state, query, err := filtering.ParseValues(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	page, limit := parsePagination(c)

	// Step 2: Load the category-scoped catalog
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := catalogService.ListProducts(ctx, query.FixedCategory)
	if err != nil {
		config.Logger.Error("failed to load storefront products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	// Step 3: Filter, sort and page
	filtered := filtering.Apply(products, state, query)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		paginate(filtered, page, limit),
		models.NewPagination(page, limit, len(filtered)),
	))
}
