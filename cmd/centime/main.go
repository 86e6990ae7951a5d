package main

import (
	"os"

	"github.com/spf13/cobra"

	"centime/internal/interfaces/cli/migrate"
	"centime/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "centime",
		Short: "Centime - subscription billing service",
		Long:  `Centime manages customer subscriptions, generates recurring bills, and records payments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
