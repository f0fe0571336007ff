package banner_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// DeleteBanner godoc
// @Summary Delete a banner
// @Tags CMS - Banners
// @Param id path string true "Banner ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/banners/{id} [delete]
func DeleteBanner(c *gin.Context) {
	id, ok := parseBannerID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := bannerService.Delete(ctx, id); err != nil {
		respondError(c, err, "Failed to delete banner")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Banner deleted successfully", nil))
}
