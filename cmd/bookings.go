package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TourGateway/internal/config"
	"github.com/m04kA/SMC-TourGateway/pkg/logger"
)

func newBookingsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect agents' booking history",
	}
	cmd.AddCommand(newBookingsListCmd(configPath))
	return cmd
}

func newBookingsListCmd(configPath *string) *cobra.Command {
	var agentID string

	c := &cobra.Command{
		Use:   "list",
		Short: "Print an agent's booking history, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			// В CLI логируем только ошибки, чтобы не мешать выводу таблицы
			log, err := logger.New("", "error")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, closeStore, err := openBookingStore(ctx, cfg, log, nil)
			if err != nil {
				return err
			}
			defer closeStore()

			records, err := store.List(ctx, agentID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no bookings for agent %q\n", agentID)
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "REFERENCE\tTOUR\tDATE\tSTART\tBOOKED AT\tLINE\tSTATUS")
			for _, r := range records {
				for _, l := range r.Result.Details {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
						r.ReferenceNo(), r.TourName, r.TourDate, r.StartTime,
						r.BookedAt.Format(time.RFC3339), l.BookingID, l.Status)
				}
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVar(&agentID, "agent", "", "agent ID (value of the X-Agent-ID header)")
	_ = c.MarkFlagRequired("agent")
	return c
}
