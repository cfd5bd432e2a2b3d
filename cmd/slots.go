package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_available_slots"
	userServiceClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/userservice"
	getAvailableSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		from string
		days int
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Вывести свободные слоты на горизонт в JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			req := &getAvailableSlotsUC.Request{HorizonDays: days}
			if from != "" {
				date, err := calendar.ParseDate(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				req.From = &date
			}

			settings, err := schedulingSettings(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			store, err := buildStorage(ctx, cfg, nil, log)
			if err != nil {
				return err
			}
			defer store.close()

			userClient := userServiceClient.NewClient(cfg.UserService.URL, cfg.UserService.TimeoutDuration(), log)
			application := newApp(store, userClient, nil, nil, settings, log)

			ctx, cancelTimeout := context.WithTimeout(ctx, time.Minute)
			defer cancelTimeout()

			resp, err := application.slots.Execute(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(getAvailableSlotsHandler.FromUseCaseResponse(resp))
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "первый день горизонта YYYY-MM-DD (по умолчанию сегодня)")
	cmd.Flags().IntVar(&days, "days", 0, "количество дней (по умолчанию scheduling.horizon_days)")

	return cmd
}
