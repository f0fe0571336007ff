// Command seed migrates the storefront schema and loads the demo catalog,
// homepage sections, banners and promotions into Postgres.
//
// Usage: go run ./cmd/seed [--reset] [--only products,sections]
package main

import (
	"fmt"
	"os"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reset bool
	only  []string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the storefront schema and load the demo dataset",
	Long: `seed creates the storefront tables and inserts the bundled demo data.

Rows that already exist (same ID) are left untouched, so seeding twice is
safe. Pass --reset to empty the tables first.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		if err := config.InitLogger(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		config.SyncLogger()
	},
	RunE: runSeed,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the storefront tables only",
	RunE:  runMigrate,
}

func init() {
	rootCmd.Flags().BoolVar(&reset, "reset", false, "truncate the seeded tables before inserting")
	rootCmd.Flags().StringSliceVar(&only, "only", nil, "seed only these datasets (products, sections, banners, promotions)")
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		config.Logger.Error("❌ Seeding failed", zap.Error(err))
		os.Exit(1)
	}
}
