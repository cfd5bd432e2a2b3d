package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ScheduleService/internal/migrate"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Применить SQL миграции к PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				files, err := migrate.Files()
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runMigrations(ctx, cfg, log)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "только вывести список миграций")

	return cmd
}
