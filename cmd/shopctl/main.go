// Command shopctl browses the storefront catalog and edits the homepage
// layout from a terminal. Reads fall back to the bundled demo data when the
// API cannot be reached.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/client"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	apiURL     string
	timeout    time.Duration
	noFallback bool
	verbose    bool
	asJSON     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Storefront catalog and homepage layout from the command line",
	Long: `shopctl talks to the storefront API.

Catalog reads (products, facets, home) are served from the bundled demo
dataset when the API is down; pass --no-fallback to fail instead. Layout
changes always go to the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	config.LoadEnv()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", config.GetEnv("SHOPCTL_API", "http://localhost:8081/api/v1"), "API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVar(&noFallback, "no-fallback", false, "fail instead of serving demo data")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of tables")

	rootCmd.AddCommand(productsCmd, facetsCmd, homeCmd, sectionsCmd, noticesCmd)
}

// newClient builds the API client from the global flags.
func newClient() *client.Client {
	opts := []client.Option{
		client.WithHTTPClient(&http.Client{Timeout: timeout}),
		client.WithLogger(logger),
	}
	if noFallback {
		opts = append(opts, client.WithoutFallback())
	}
	return client.New(apiURL, opts...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
