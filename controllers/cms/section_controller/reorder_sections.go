package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// ReorderSections godoc
// @Summary Reorder homepage sections
// @Description Saves the complete order after a drag-reorder. Every section must be listed once with orders 1..n; the whole request fails if any id is unknown.
// @Tags CMS - Homepage
// @Accept json
// @Produce json
// @Param body body models.ReorderSectionsRequest true "New order"
// @Success 200 {object} models.ApiResponse{data=[]models.HomepageSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/homepage-sections/reorder [put]
func ReorderSections(c *gin.Context) {
	// Step 1: Bind request
	var input models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Persist in one transaction
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sections, err := sectionService.Reorder(ctx, input.Sections)
	if err != nil {
		respondError(c, err, "Failed to reorder homepage sections")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage sections reordered successfully", sections))
}
