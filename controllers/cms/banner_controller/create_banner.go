package banner_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// CreateBanner godoc
// @Summary Create a banner
// @Tags CMS - Banners
// @Accept json
// @Produce json
// @Param banner body models.BannerRequest true "Banner"
// @Success 201 {object} models.ApiResponse{data=models.Banner}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/banners [post]
func CreateBanner(c *gin.Context) {
	var input models.BannerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	banner, err := bannerService.Create(ctx, input)
	if err != nil {
		respondError(c, err, "Failed to create banner")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Banner created successfully", banner))
}
