package promotion_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// GetPromotions godoc
// @Summary List promotions
// @Description All promotions, newest start first; live=true keeps only those usable now
// @Tags CMS - Promotions
// @Produce json
// @Param live query bool false "Only live promotions"
// @Success 200 {object} models.ApiResponse{data=[]models.Promotion}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/promotions [get]
func GetPromotions(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	list := promotionService.List
	if c.Query("live") == "true" {
		list = promotionService.ListLive
	}

	promotions, err := list(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch promotions")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promotions fetched successfully", promotions))
}
