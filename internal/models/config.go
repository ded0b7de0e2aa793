package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed                   int           `mapstructure:"seed"`
	StartDate              time.Time     `mapstructure:"start_date"`
	Steps                  int           `mapstructure:"steps"` // 0 means run until stopped
	StepInterval           time.Duration `mapstructure:"step_interval"`
	InitialBudget          float64       `mapstructure:"initial_budget"`
	DailyCustomers         int           `mapstructure:"daily_customers"`
	OpeningHour            int           `mapstructure:"opening_hour"`
	ClosingHour            int           `mapstructure:"closing_hour"`
	RecommendationInterval int           `mapstructure:"recommendation_interval"` // simulated hours
	CatalogFile            string        `mapstructure:"catalog_file"`
	SyntheticItems         int           `mapstructure:"synthetic_items"`
	LogLevel               string        `mapstructure:"log_level"`
	// Output settings
	OutputFormat      string             `mapstructure:"output_format"` // console, jsonl, parquet, postgres
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"` // local or cloud
	KafkaEnabled      bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList   string             `mapstructure:"kafka_broker_list"`
	Database          DatabaseConfig     `mapstructure:"database"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("start_date", time.Now().Format(time.RFC3339))
	viper.SetDefault("step_interval", "1s")
	viper.SetDefault("initial_budget", 1000000)
	viper.SetDefault("daily_customers", 5000)
	viper.SetDefault("opening_hour", 8)
	viper.SetDefault("closing_hour", 20)
	viper.SetDefault("recommendation_interval", 4)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// LoadCatalogData reads a catalog CSV with a header row and columns
// name, base_price, cost, popularity, initial_stock.
func LoadCatalogData(filePath string) ([]*Item, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Read()

	var catalog []*Item
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 5 {
			return nil, fmt.Errorf("catalog row needs 5 fields, got %d", len(fields))
		}
		basePrice, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid base_price for %s: %w", fields[0], err)
		}
		cost, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cost for %s: %w", fields[0], err)
		}
		popularity, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid popularity for %s: %w", fields[0], err)
		}
		stock, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("invalid initial_stock for %s: %w", fields[0], err)
		}
		catalog = append(catalog, &Item{
			Name:         fields[0],
			BasePrice:    basePrice,
			Cost:         cost,
			Popularity:   popularity,
			InitialStock: stock,
		})
	}

	return catalog, nil
}
