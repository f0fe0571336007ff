package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database bundles the two handles the services use: GORM for CRUD and a
// pgx pool for batched writes.
type Database struct {
	Gorm *gorm.DB
	Pool *pgxpool.Pool
}

// DatabaseURL prefers STOREFRONT_DB_URL and falls back to the DB_* parts.
func DatabaseURL() string {
	if url := GetEnv("STOREFRONT_DB_URL", ""); url != "" {
		return url
	}
	Logger.Warn("⚠️ STOREFRONT_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME", "storefront"),
	)
}

// InitDB connects both handles. Callers decide whether a failure is fatal;
// the API server drops to memory mode instead.
func InitDB(ctx context.Context) (*Database, error) {
	url := DatabaseURL()

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect storefront database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping storefront database: %w", err)
	}
	Logger.Info("✅ Storefront database connected (pgx)")

	gormLogger := logger.Default.LogMode(logger.Info)
	if IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open storefront database with GORM: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(GetIntEnv("DB_MAX_OPEN_CONNS", 5))
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Logger.Info("✅ Storefront database connected (GORM)")

	return &Database{Gorm: db, Pool: pool}, nil
}

// Close releases both handles. Safe on a nil receiver.
func (d *Database) Close() {
	if d == nil {
		return
	}
	if d.Pool != nil {
		d.Pool.Close()
		Logger.Info("✅ Storefront database connection closed (pgx)")
	}
	if d.Gorm != nil {
		if sqlDB, err := d.Gorm.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				Logger.Warn("failed to close GORM connection", zap.Error(err))
				return
			}
			Logger.Info("✅ Storefront database connection closed (GORM)")
		}
	}
}
