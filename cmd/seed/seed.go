package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dataset is one table of the demo data.
type dataset struct {
	name  string
	table string
	load  func(tx *gorm.DB) (int64, error)
}

var datasets = []dataset{
	{name: "products", table: "products", load: insertAll(mockdata.Products)},
	{name: "sections", table: "homepage_sections", load: insertAll(mockdata.Sections)},
	{name: "banners", table: "banners", load: insertAll(mockdata.Banners)},
	{name: "promotions", table: "promotions", load: insertAll(mockdata.Promotions)},
}

// insertAll inserts every row, skipping IDs that are already present.
func insertAll[T any](fetch func() ([]T, error)) func(tx *gorm.DB) (int64, error) {
	return func(tx *gorm.DB) (int64, error) {
		rows, err := fetch()
		if err != nil {
			return 0, err
		}
		if len(rows) == 0 {
			return 0, nil
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100)
		return res.RowsAffected, res.Error
	}
}

// selectDatasets resolves the --only flag. Unknown names are an error.
func selectDatasets(names []string) ([]dataset, error) {
	if len(names) == 0 {
		return datasets, nil
	}
	var out []dataset
	for _, d := range datasets {
		if slices.Contains(names, d.name) {
			out = append(out, d)
		}
	}
	for _, n := range names {
		if !slices.ContainsFunc(datasets, func(d dataset) bool { return d.name == n }) {
			return nil, fmt.Errorf("unknown dataset %q", n)
		}
	}
	return out, nil
}

func connect() (*config.Database, error) {
	ctx, cancel := config.WithCustomTimeout(10 * time.Second)
	defer cancel()
	db, err := config.InitDB(ctx)
	if err != nil {
		return nil, err
	}
	if err := models.AutoMigrate(db.Gorm); err != nil {
		db.Close()
		return nil, err
	}
	config.Logger.Info("✓ Schema migrated")
	return db, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}
	db.Close()
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	selected, err := selectDatasets(only)
	if err != nil {
		return err
	}

	db, err := connect()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("STOREFRONT - Demo Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	counts := make(map[string]int64, len(selected))
	err = db.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			tables := make([]string, 0, len(selected))
			for _, d := range selected {
				tables = append(tables, d.table)
			}
			if err := tx.Exec("TRUNCATE " + strings.Join(tables, ", ")).Error; err != nil {
				return fmt.Errorf("truncate %v: %w", tables, err)
			}
			config.Logger.Info("✓ Tables truncated", zap.Strings("tables", tables))
		}
		for _, d := range selected {
			n, err := d.load(tx)
			if err != nil {
				return fmt.Errorf("seed %s: %w", d.name, err)
			}
			counts[d.name] = n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✅ Demo data seeded")
	for _, d := range selected {
		fmt.Printf("%-12s %d new rows\n", d.name+":", counts[d.name])
	}
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API: go run .")
	fmt.Println("2. Browse GET /api/v1/store/products and GET /api/v1/home")
	return nil
}
