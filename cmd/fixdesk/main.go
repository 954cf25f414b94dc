package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixdesk/internal/interfaces/cli/migrate"
	"fixdesk/internal/interfaces/cli/server"
	"fixdesk/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixdesk",
		Short: "Fixdesk - device support ticketing service",
		Long:  `Fixdesk is a device support ticketing service with a built-in server, migration tools, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
