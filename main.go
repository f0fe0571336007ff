// @title Storefront API
// @version 1.0
// @description Storefront catalog, filter facets and homepage CMS API
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalog_cache "github.com/abbu1809/Ecommerce-FL-React-sub003/cache"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/routes"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/services"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	config.LoadEnv()
	if err := config.InitLogger(); err != nil {
		panic(err)
	}
	defer config.SyncLogger()
	log := config.Logger

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database is optional: without it the API serves the demo dataset.
	var (
		gormDB *gorm.DB
		pool   *pgxpool.Pool
	)
	ctx, cancel := config.WithTimeout()
	db, err := config.InitDB(ctx)
	cancel()
	if err != nil {
		log.Warn("⚠️ Database unavailable, running in memory mode", zap.Error(err))
	} else {
		defer db.Close()
		if err := models.AutoMigrate(db.Gorm); err != nil {
			log.Fatal("❌ Migration failed", zap.Error(err))
		}
		gormDB, pool = db.Gorm, db.Pool
	}

	// Redis backs the admin rate limiter only.
	var rdb *redis.Client
	ctx, cancel = config.WithCustomTimeout(3 * time.Second)
	rdb, err = config.ConnectRedis(ctx)
	cancel()
	if err != nil {
		log.Warn("⚠️ Redis unavailable, admin rate limiting disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	catalog, err := services.NewCatalogService(gormDB, catalog_cache.New(config.GetDurationEnv("CACHE_TTL", catalog_cache.DefaultTTL)), log)
	if err != nil {
		log.Fatal("❌ Failed to initialize catalog", zap.Error(err))
	}
	sections, err := services.NewSectionService(gormDB, pool, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize homepage sections", zap.Error(err))
	}
	banners, err := services.NewBannerService(gormDB, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize banners", zap.Error(err))
	}
	promotions, err := services.NewPromotionService(gormDB, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize promotions", zap.Error(err))
	}

	router := routes.NewRouter(routes.Deps{
		Catalog:         catalog,
		Sections:        sections,
		Banners:         banners,
		Promotions:      promotions,
		Home:            services.NewHomeService(sections, banners, promotions),
		Redis:           rdb,
		RateLimitMax:    config.GetIntEnv("RATE_LIMIT_MAX", 100),
		RateLimitWindow: config.GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		AllowedOrigins:  config.GetListEnv("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		Logger:          log,
	})

	addr := ":" + config.GetEnv("PORT", "8081")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Server is running", zap.String("addr", addr), zap.String("mode", catalog.Mode()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
