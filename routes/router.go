package routes

import (
	"net/http"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/banner_controller"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/promotion_controller"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/cms/section_controller"
	store_category "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/category_controller"
	store_home "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/home_controller"
	store_product "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/product_controller"
	_ "github.com/abbu1809/Ecommerce-FL-React-sub003/docs"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/middleware"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/routes/cms_routes"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/routes/ecommerce_routes"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Catalog    *services.CatalogService
	Sections   *services.SectionService
	Banners    *services.BannerService
	Promotions *services.PromotionService
	Home       *services.HomeService

	Redis           *redis.Client
	RateLimitMax    int
	RateLimitWindow time.Duration
	AllowedOrigins  []string
	Logger          *zap.Logger
}

// NewRouter wires the controllers to deps and registers every route.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.RateLimitMax <= 0 {
		deps.RateLimitMax = 100
	}
	if deps.RateLimitWindow <= 0 {
		deps.RateLimitWindow = time.Minute
	}

	store_product.InitCatalogService(deps.Catalog)
	store_category.InitCatalogService(deps.Catalog)
	store_home.InitHomeService(deps.Home)
	section_controller.InitSectionService(deps.Sections)
	banner_controller.InitBannerService(deps.Banners)
	promotion_controller.InitPromotionService(deps.Promotions)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.DataSource(deps.Catalog.Mode()))

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{"mode": deps.Catalog.Mode()}))
	})

	api := router.Group("/api/v1")

	// Admin (rate limited, writes audited)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(deps.Redis, deps.RateLimitMax, deps.RateLimitWindow, deps.Logger))
	adminGroup.Use(middleware.AdminActivityLogger(deps.Logger))
	cms_routes.SetupSectionRoutes(adminGroup)
	cms_routes.SetupBannerRoutes(adminGroup)
	cms_routes.SetupPromotionRoutes(adminGroup)

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
