package banner_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// UpdateBanner godoc
// @Summary Update a banner
// @Tags CMS - Banners
// @Accept json
// @Produce json
// @Param id path string true "Banner ID"
// @Param banner body models.UpdateBannerRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Banner}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/banners/{id} [patch]
func UpdateBanner(c *gin.Context) {
	id, ok := parseBannerID(c)
	if !ok {
		return
	}
	var input models.UpdateBannerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	banner, err := bannerService.Update(ctx, id, input)
	if err != nil {
		respondError(c, err, "Failed to update banner")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banner updated successfully", banner))
}
