package home_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var homeService *services.HomeService

func InitHomeService(s *services.HomeService) {
	homeService = s
}

// GetHomepage godoc
// @Summary Get storefront homepage
// @Description Enabled sections in display order, active banners and live promotions
// @Tags Storefront - Home
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.HomepageResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/home [get]
func GetHomepage(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	home, err := homeService.Homepage(ctx)
	if err != nil {
		config.Logger.Error("failed to assemble homepage", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch homepage"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage fetched successfully", home))
}
