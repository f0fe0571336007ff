package promotion_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// CreatePromotion godoc
// @Summary Create a promotion
// @Description Codes are stored upper case and must be unique. starts_at defaults to now.
// @Tags CMS - Promotions
// @Accept json
// @Produce json
// @Param promotion body models.PromotionRequest true "Promotion"
// @Success 201 {object} models.ApiResponse{data=models.Promotion}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/promotions [post]
func CreatePromotion(c *gin.Context) {
	var input models.PromotionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	promotion, err := promotionService.Create(ctx, input)
	if err != nil {
		respondError(c, err, "Failed to create promotion")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Promotion created successfully", promotion))
}
