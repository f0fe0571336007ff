package ecommerce_routes

import (
	store_category "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/category_controller"
	store_home "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/home_controller"
	store_product "github.com/abbu1809/Ecommerce-FL-React-sub003/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // List with filters
		products.GET("/facets", store_product.GetProductFacets)      // Filter sidebar
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	store.GET("/categories", store_category.GetCategories)
	store.GET("/brands", store_category.GetBrands)
	store.GET("/home", store_home.GetHomepage)
}
