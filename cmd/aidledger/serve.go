package main

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/aidledger/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Serve the Connect APIs, CSV exports, metrics and the static frontend
until interrupted.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	a := app.New(cfg, store, logger)
	defer a.Close()
	return a.Serve(ctx)
}
