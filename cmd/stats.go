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

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise the durable sales and inventory logs",
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

		repo := postgres.NewReportRepository(pool)

		salesCount, err := repo.SalesCount(ctx)
		if err != nil {
			logrus.Fatalf("Failed to count sales: %v", err)
		}
		inventoryCount, err := repo.InventoryCount(ctx)
		if err != nil {
			logrus.Fatalf("Failed to count inventory snapshots: %v", err)
		}
		totals, err := repo.ItemTotals(ctx)
		if err != nil {
			logrus.Fatalf("Failed to aggregate item totals: %v", err)
		}

		fmt.Printf("sales rows:     %d\n", salesCount)
		fmt.Printf("inventory rows: %d\n", inventoryCount)
		for _, t := range totals {
			fmt.Printf("  %-20s %8d units  %12.2f profit\n", t.Item, t.Units, t.Profit)
		}

		if statsLimit > 0 {
			recent, err := repo.RecentSales(ctx, statsLimit)
			if err != nil {
				logrus.Fatalf("Failed to fetch recent sales: %v", err)
			}
			fmt.Printf("last %d sales:\n", len(recent))
			for _, s := range recent {
				fmt.Printf("  %s  %-20s x%-5d @ %.2f\n",
					s.Timestamp.Format("2006-01-02 15:04"), s.Item, s.Quantity, s.Price)
			}
		}
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "recent", 0, "Also print the N most recent sales")
	rootCmd.AddCommand(statsCmd)
}
