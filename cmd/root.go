package cmd

import (
	"fmt"
	"os"

	"github.com/Govind-619/CorpSite/config"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "corpsite",
	Short:   "CorpSite - company website backend with Razorpay payments",
	Version: Version,
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, starts the file logger and opens the database
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}

	if err := utils.InitLogger(cfg.LogDir); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.LogError("Database initialization failed: %v", err)
		return nil, nil, err
	}
	utils.LogInfo("Connected to database (env: %s)", cfg.Env)
	return cfg, db, nil
}
