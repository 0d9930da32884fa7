package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/back-informatica/chamados/internal/interfaces/cli/migrate"
	"github.com/back-informatica/chamados/internal/interfaces/cli/server"
	"github.com/back-informatica/chamados/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "chamados",
		Short:        "chamados - support ticket API",
		Long:         `chamados serves the support ticket HTTP API and ships the migration and account provisioning tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
