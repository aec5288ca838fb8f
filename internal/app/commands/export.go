package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	candleadapters "stock_synth/internal/feature/candles/adapters"
	"stock_synth/internal/platform/db"
	"stock_synth/internal/platform/export"
)

type exportOptions struct {
	symbol   string
	interval string
	format   string
	outDir   string
	limit    int
}

func newExportCommand() *cobra.Command {
	var opts exportOptions
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write OHLCV bars to csv, json or parquet files",
		Long: `Export the stored candlestick bars, one file per symbol named
SYMBOL_INTERVAL.EXT. Without --symbol every symbol that has bars for the
interval is exported.

Examples:
  stocksynth export --symbol AAPL --format parquet
  stocksynth export --format csv --out ./exports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			gdb, err := db.Open(cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close(gdb)
			return runExport(ctx, gdb, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.symbol, "symbol", "s", "", "symbol to export (default: all)")
	cmd.Flags().StringVarP(&opts.interval, "interval", "i", "1day", "bar interval")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "csv", "output format: "+strings.Join(export.Formats, ", "))
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "latest N bars per symbol (0: all)")
	return cmd
}

func runExport(ctx context.Context, gdb *gorm.DB, opts exportOptions, out io.Writer) error {
	w, err := export.New(opts.format)
	if err != nil {
		return err
	}
	repo := candleadapters.NewCandleRepository(gdb)

	symbols := []string{strings.ToUpper(strings.TrimSpace(opts.symbol))}
	if symbols[0] == "" {
		if symbols, err = repo.Symbols(ctx, opts.interval); err != nil {
			return err
		}
	}
	if len(symbols) == 0 {
		return fmt.Errorf("no bars stored for interval %s", opts.interval)
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}

	for _, sym := range symbols {
		bars, err := repo.Find(ctx, sym, opts.interval, opts.limit)
		if err != nil {
			return fmt.Errorf("find candles %s/%s: %w", sym, opts.interval, err)
		}
		if len(bars) == 0 {
			return fmt.Errorf("no bars for %s/%s", sym, opts.interval)
		}
		path := filepath.Join(opts.outDir, export.FileName(sym, opts.interval, w))
		if err := export.ToFile(path, w, bars); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "%s: %d bars -> %s\n", sym, len(bars), path)
	}
	return nil
}
