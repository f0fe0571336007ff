package cms_routes

import (
	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/banner_controller"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/promotion_controller"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/section_controller"
	"github.com/gin-gonic/gin"
)

func SetupSectionRoutes(rg *gin.RouterGroup) {
	sections := rg.Group("/homepage-sections")

	sections.GET("", section_controller.GetSections)
	sections.POST("", section_controller.CreateSection)

	// Static segment must be registered alongside :id
	sections.PUT("/reorder", section_controller.ReorderSections)

	sections.PATCH("/:id", section_controller.UpdateSection)
	sections.PATCH("/:id/toggle", section_controller.ToggleSection)
	sections.DELETE("/:id", section_controller.DeleteSection)
}

func SetupBannerRoutes(rg *gin.RouterGroup) {
	banners := rg.Group("/banners")

	banners.GET("", banner_controller.GetBanners)
	banners.POST("", banner_controller.CreateBanner)
	banners.PATCH("/:id", banner_controller.UpdateBanner)
	banners.DELETE("/:id", banner_controller.DeleteBanner)
}

func SetupPromotionRoutes(rg *gin.RouterGroup) {
	promotions := rg.Group("/promotions")

	promotions.GET("", promotion_controller.GetPromotions)
	promotions.POST("", promotion_controller.CreatePromotion)
	promotions.PATCH("/:id", promotion_controller.UpdatePromotion)
	promotions.DELETE("/:id", promotion_controller.DeletePromotion)
}
