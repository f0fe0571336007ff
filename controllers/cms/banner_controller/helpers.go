package banner_controller

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

var bannerService *services.BannerService

func InitBannerService(s *services.BannerService) {
	bannerService = s
}

func parseBannerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid banner ID"))
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrBannerNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Banner not found"))
		return
	}
	config.Logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, fallback))
}
