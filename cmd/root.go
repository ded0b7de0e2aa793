package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/florasim/florasim/internal/factories"
	"github.com/florasim/florasim/internal/models"
	"github.com/florasim/florasim/internal/output"
	"github.com/florasim/florasim/internal/shop"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "florasim",
	Short: "Simulates a flower shop's hourly retail activity",
	Long: `florasim is a CLI tool that runs a time-stepped simulation of a flower
shop: stochastic hourly demand, time-of-day pricing, periodic price and
reorder heuristics, and an append-only log of sales and inventory snapshots.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		configureLogging(cfg)

		sink, err := output.FromConfig(cfg)
		if err != nil {
			logrus.Fatalf("Failed to create output sink: %v", err)
		}
		defer sink.Close()

		if cfg.Steps > 0 {
			runBounded(cfg, sink)
			return
		}
		runContinuous(cfg, sink)
	},
}

func buildShop(cfg *models.Config, sink shop.Sink) (*shop.Shop, error) {
	catalog, err := factories.BuildCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return shop.New(cfg, catalog, sink), nil
}

func runBounded(cfg *models.Config, sink shop.Sink) {
	s, err := buildShop(cfg, sink)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()
	bar := progressbar.Default(int64(cfg.Steps), "simulating")

	var last models.StepResult
	for i := 0; i < cfg.Steps; i++ {
		result, err := s.Step(ctx)
		if err != nil {
			logrus.Fatalf("Simulation step failed: %v", err)
		}
		last = result
		bar.Add(1)
	}

	snapshot := s.Snapshot()
	logrus.WithFields(logrus.Fields{
		"time":    snapshot.CurrentTime.Format(time.RFC3339),
		"budget":  snapshot.Budget,
		"revenue": snapshot.TodayRevenue,
		"units":   last.UnitsSold,
		"profit":  last.Profit,
	}).Info("simulation complete")
}

func runContinuous(cfg *models.Config, sink shop.Sink) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// validate the catalog up front so a bad config fails before the loop
	if _, err := buildShop(cfg, sink); err != nil {
		logrus.Fatal(err)
	}

	runner := shop.NewRunner(func() *shop.Shop {
		s, err := buildShop(cfg, sink)
		if err != nil {
			logrus.Fatal(err)
		}
		return s
	}, cfg.StepInterval)

	if err := runner.Start(ctx); err != nil {
		logrus.Fatalf("Failed to start simulation: %v", err)
	}
	logrus.WithField("interval", cfg.StepInterval).Info("simulation started, Ctrl-C to stop")

	<-ctx.Done()
	runner.Stop()
	if err := runner.Err(); err != nil {
		logrus.Fatalf("Simulation ended with error: %v", err)
	}
	logrus.Info("simulation stopped")
}

func configureLogging(cfg *models.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for simulation")
	rootCmd.Flags().String("start-date", time.Now().Format(time.RFC3339), "Start date for simulation")
	rootCmd.Flags().Int("steps", 0, "Number of simulated hours to run (0 runs until interrupted)")
	rootCmd.Flags().Duration("step-interval", time.Second, "Wall-clock delay per simulated hour in continuous mode")
	rootCmd.Flags().Float64("initial-budget", 1000000, "Initial purchasing budget")
	rootCmd.Flags().Int("daily-customers", 5000, "Baseline daily customer count")
	rootCmd.Flags().Int("opening-hour", 8, "Hour the shop opens")
	rootCmd.Flags().Int("closing-hour", 20, "Hour the shop closes")
	rootCmd.Flags().Int("synthetic-items", 0, "Extra generated catalog items for stress runs")
	rootCmd.Flags().String("catalog-file", "", "Catalog CSV path (overrides the default catalog)")
	rootCmd.Flags().String("output-format", "console", "Output sink: console, jsonl, parquet or postgres")
	rootCmd.Flags().String("output-path", "", "Base directory for file outputs")
	rootCmd.Flags().String("output-folder", "florasim", "Folder name under the output path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Stream events to Kafka instead of the configured sink")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("log-level", "info", "Log level")

	viper.BindPFlags(rootCmd.Flags())
	viper.AutomaticEnv()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
