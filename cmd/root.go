package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

const defaultConfigPath = "config.toml"

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "smc-schedule",
		Short:         "Расписание сотрудников, свободные слоты и запись клиентов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "путь к config.toml")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSlotsCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
