package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/provinciareal/dashboard/app"
	"github.com/provinciareal/dashboard/config"
	"github.com/provinciareal/dashboard/internal/dashboard"
	"github.com/provinciareal/dashboard/internal/rates"
	"github.com/provinciareal/dashboard/internal/store"
	"github.com/provinciareal/dashboard/log"
	"github.com/spf13/cobra"
)

// computeCmd computes the dashboard once from the cache and prints it as JSON.
func computeCmd() *cobra.Command {
	var q dashboard.Query

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute dashboard metrics for a period and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load a config: %w", err)
			}
			// stdout carries the result
			slog.SetDefault(log.New(cfg.Logger, os.Stderr))

			ctx := cmd.Context()
			db, err := store.New(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("couldn't connect to mysql: %w", err)
			}
			defer db.Close()

			dash, err := app.NewDashboard(cfg, db, rates.New(&cfg.Rates, db.Rates()))
			if err != nil {
				return err
			}
			m, err := dash.Metrics(ctx, q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(m)
		},
	}

	cmd.Flags().StringVar(&q.From, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&q.To, "to", "", "last day, YYYY-MM-DD (defaults to --from)")
	cmd.Flags().StringVar(&q.Preset, "preset", "", "today, yesterday, last7, last30 or month")
	cmd.Flags().StringVar(&q.Timezone, "tz", "", "display timezone, LA or BR")
	return cmd
}
