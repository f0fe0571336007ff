package promotion_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// UpdatePromotion godoc
// @Summary Update a promotion
// @Tags CMS - Promotions
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param promotion body models.UpdatePromotionRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Promotion}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/promotions/{id} [patch]
func UpdatePromotion(c *gin.Context) {
	id, ok := parsePromotionID(c)
	if !ok {
		return
	}
	var input models.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	promotion, err := promotionService.Update(ctx, id, input)
	if err != nil {
		respondError(c, err, "Failed to update promotion")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotion updated successfully", promotion))
}
