package banner_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// GetBanners godoc
// @Summary List banners
// @Description Banners by position; active=true hides inactive ones
// @Tags CMS - Banners
// @Produce json
// @Param active query bool false "Only active banners"
// @Success 200 {object} models.ApiResponse{data=[]models.Banner}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/banners [get]
func GetBanners(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	banners, err := bannerService.List(ctx, c.Query("active") == "true")
	if err != nil {
		respondError(c, err, "Failed to fetch banners")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banners fetched successfully", banners))
}
