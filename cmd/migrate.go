package cmd

import (
	"fmt"

	"github.com/Govind-619/CorpSite/config"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}

			if err := config.Migrate(db); err != nil {
				utils.LogError("Migration failed: %v", err)
				return err
			}
			utils.LogInfo("Database migration completed")
			fmt.Println("Database migration completed")
			return nil
		},
	}
}
