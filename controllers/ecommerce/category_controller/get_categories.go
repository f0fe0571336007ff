package category_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var catalogService *services.CatalogService

func InitCatalogService(s *services.CatalogService) {
	catalogService = s
}

// GetCategories godoc
// @Summary Get storefront categories
// @Description Distinct product categories with product counts, most populated first
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontCategory}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := catalogService.Categories(ctx)
	if err != nil {
		config.Logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
