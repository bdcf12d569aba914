package main

import (
	"os"

	"github.com/J-Castrillon/InventoryManagement/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
