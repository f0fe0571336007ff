package product_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProductFacets godoc
// @Summary Get filter facets
// @Description Facet options with counts, price bounds and availability for the category scope
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Route category (hyphens match spaces)"
// @Success 200 {object} models.ApiResponse{data=filtering.Summary}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/facets [get]
func GetProductFacets(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	category := c.Query("category")
	summary, err := catalogService.Facets(ctx, category)
	if err != nil {
		config.Logger.Error("failed to derive facets", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter facets"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facets fetched successfully", summary))
}
