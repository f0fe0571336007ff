package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// DeleteSection godoc
// @Summary Delete a homepage section
// @Description Removes the section and renumbers the ones after it
// @Tags CMS - Homepage
// @Param id path string true "Section ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/homepage-sections/{id} [delete]
func DeleteSection(c *gin.Context) {
	id, ok := parseSectionID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := sectionService.Delete(ctx, id); err != nil {
		respondError(c, err, "Failed to delete homepage section")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage section deleted successfully", nil))
}
