package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// ToggleSection godoc
// @Summary Enable or disable a homepage section
// @Tags CMS - Homepage
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} models.ApiResponse{data=models.HomepageSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/homepage-sections/{id}/toggle [patch]
func ToggleSection(c *gin.Context) {
	id, ok := parseSectionID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	section, err := sectionService.Toggle(ctx, id)
	if err != nil {
		respondError(c, err, "Failed to toggle homepage section")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage section toggled successfully", section))
}
