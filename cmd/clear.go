package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/florasim/florasim/internal/models"
	"github.com/florasim/florasim/internal/repositories/postgres"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Truncate the durable sales and inventory logs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := postgres.Connect(ctx, &cfg.Database)
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		if err := postgres.NewReportRepository(pool).Clear(ctx); err != nil {
			logrus.Fatalf("Failed to clear database: %v", err)
		}
		logrus.Info("sales and inventory logs cleared")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
