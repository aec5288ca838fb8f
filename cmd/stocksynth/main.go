package main

import (
	"context"
	"log/slog"
	"os"

	"stock_synth/internal/app/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
