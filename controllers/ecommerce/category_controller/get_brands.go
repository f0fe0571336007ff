package category_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetBrands godoc
// @Summary Get storefront brands
// @Description Distinct brands with product counts, most populated first
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontBrand}
// @Failure 500 {object} models.ApiResponse
// @Router /store/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	brands, err := catalogService.Brands(ctx)
	if err != nil {
		config.Logger.Error("failed to list brands", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch brands"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Brands fetched successfully", brands))
}
