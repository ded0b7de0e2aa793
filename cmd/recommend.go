package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/florasim/florasim/internal/models"
	"github.com/florasim/florasim/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run a bounded simulation, apply a recommendation refresh and print the set",
	Long: `recommend steps the simulation the configured number of hours, then forces
a recommendation refresh outside the periodic cadence. The refreshed set is
applied to the shop (prices overwritten, reorders executed) and printed as
JSON. With steps set to 0 the refresh runs against the initial state.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		configureLogging(cfg)

		recs, err := refreshRecommendations(cfg)
		if err != nil {
			logrus.Fatalf("Failed to refresh recommendations: %v", err)
		}

		encoded, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			logrus.Fatalf("Failed to encode recommendations: %v", err)
		}
		fmt.Println(string(encoded))
	},
}

func refreshRecommendations(cfg *models.Config) (*models.RecommendationSet, error) {
	sink, err := output.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create output sink: %w", err)
	}
	defer sink.Close()

	s, err := buildShop(cfg, sink)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	for i := 0; i < cfg.Steps; i++ {
		if _, err := s.Step(ctx); err != nil {
			return nil, fmt.Errorf("simulation step failed: %w", err)
		}
	}

	return s.RefreshRecommendations(), nil
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}
