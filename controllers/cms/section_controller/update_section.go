package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// UpdateSection godoc
// @Summary Update a homepage section
// @Description Partial update; position is changed through the reorder endpoint only
// @Tags CMS - Homepage
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param section body models.UpdateHomepageSectionRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.HomepageSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/homepage-sections/{id} [patch]
func UpdateSection(c *gin.Context) {
	// Step 1: Parse ID and body
	id, ok := parseSectionID(c)
	if !ok {
		return
	}
	var input models.UpdateHomepageSectionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Apply
	ctx, cancel := config.WithTimeout()
	defer cancel()

	section, err := sectionService.Update(ctx, id, input)
	if err != nil {
		respondError(c, err, "Failed to update homepage section")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage section updated successfully", section))
}
