package section_controller

import (
	"net/http"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/gin-gonic/gin"
)

// GetSections godoc
// @Summary List homepage sections
// @Description All homepage sections, enabled or not, in display order
// @Tags CMS - Homepage
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.HomepageSection}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/homepage-sections [get]
func GetSections(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	sections, err := sectionService.List(ctx)
	if err != nil {
		respondError(c, err, "Failed to fetch homepage sections")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Homepage sections fetched successfully", sections))
}
