package cli

import (
	"fmt"

	"github.com/J-Castrillon/InventoryManagement/internal/config"
	"github.com/J-Castrillon/InventoryManagement/internal/database"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var clearData bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the products table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		if cfg.DatabaseDriver == database.DriverMemory {
			return fmt.Errorf("the %s driver has nothing to migrate", database.DriverMemory)
		}

		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if clearData {
			if err := database.Reset(db); err != nil {
				return err
			}
			cmd.Printf("Cleared products table (%s)\n", cfg.DatabaseDriver)
			return nil
		}

		if err := database.Migrate(db); err != nil {
			return err
		}
		cmd.Printf("Migrated products table (%s)\n", cfg.DatabaseDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&clearData, "clear", false, "Drop every product and recreate the table")
}
