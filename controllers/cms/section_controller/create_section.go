package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// CreateSection godoc
// @Summary Create a homepage section
// @Description Appends a new section after the current last one
// @Tags CMS - Homepage
// @Accept json
// @Produce json
// @Param section body models.HomepageSectionRequest true "Section"
// @Success 201 {object} models.ApiResponse{data=models.HomepageSection}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/homepage-sections [post]
func CreateSection(c *gin.Context) {
	// Step 1: Bind request
	var input models.HomepageSectionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Create
	ctx, cancel := config.WithTimeout()
	defer cancel()

	section, err := sectionService.Create(ctx, input)
	if err != nil {
		respondError(c, err, "Failed to create homepage section")
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Homepage section created successfully", section))
}
