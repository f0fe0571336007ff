package section_controller

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

var sectionService *services.SectionService

func InitSectionService(s *services.SectionService) {
	sectionService = s
}

func parseSectionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid section ID"))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Homepage section not found"))
	case errors.Is(err, services.ErrInvalidSectionOrder), errors.Is(err, services.ErrInvalidSectionIndex):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
	default:
		config.Logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, fallback))
	}
}
