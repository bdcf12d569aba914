// Package cli implements the inventory command line.
package cli

import (
	"github.com/J-Castrillon/InventoryManagement/internal/config"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Product inventory REST service",
	Long:  "Inventory serves a JSON REST API to create, list, update, toggle and delete products.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnvFile(envFile)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File with environment variables to load before reading the configuration")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
