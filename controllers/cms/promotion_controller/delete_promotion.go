package promotion_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// DeletePromotion godoc
// @Summary Delete a promotion
// @Tags CMS - Promotions
// @Param id path string true "Promotion ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/promotions/{id} [delete]
func DeletePromotion(c *gin.Context) {
	id, ok := parsePromotionID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := promotionService.Delete(ctx, id); err != nil {
		respondError(c, err, "Failed to delete promotion")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion deleted successfully", nil))
}
