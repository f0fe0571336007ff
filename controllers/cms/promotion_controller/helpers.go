package promotion_controller

import (
	"errors"
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var promotionService *services.PromotionService

func InitPromotionService(s *services.PromotionService) {
	promotionService = s
}

func parsePromotionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid promotion ID"))
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrPromotionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Promotion not found"))
	case errors.Is(err, services.ErrDuplicatePromotion):
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Promotion code already exists"))
	case errors.Is(err, services.ErrInvalidPromotionRange):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Promotion must end after it starts"))
	default:
		config.Logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, fallback))
	}
}
