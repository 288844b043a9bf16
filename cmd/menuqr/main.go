package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/menuqr-inc/menuqr/internal/interfaces/cli/migrate"
	"github.com/menuqr-inc/menuqr/internal/interfaces/cli/seed"
	"github.com/menuqr-inc/menuqr/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "menuqr",
		Short: "MenuQR - QR code menus for restaurants",
		Long:  `MenuQR serves restaurant menus over QR codes, with subscription-gated menu management.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
