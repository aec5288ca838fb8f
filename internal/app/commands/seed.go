package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stock_synth/internal/app/di"
	"stock_synth/internal/platform/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the embedded mock dataset into the database",
		Long: `Validate the embedded fixtures and upsert them into every table.
Re-running is safe: rows are keyed and updated in place. Cached candle
entries of the written symbols are dropped when Redis is available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			f, err := seed.Default()
			if err != nil {
				return err
			}

			st, err := openStores(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			w, err := di.SeedWriters(st.db, st.rdb, cfg.Cache)
			if err != nil {
				return err
			}
			r, err := seed.Load(ctx, w, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"seeded: symbols=%d quotes=%d movers=%d candles=%d indicators=%d comparison=%d indices=%d intraday=%d companies=%d\n",
				r.Symbols, r.Quotes, r.Movers, r.Candles, r.Indicators, r.Comparison, r.Indices, r.Intraday, r.Companies)
			return nil
		},
	}
}
