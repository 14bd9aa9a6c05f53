package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/aidledger/internal/export"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/storage"
)

var (
	exportID  string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a distribution as CSV",
	Long: `Write the recipient list of one distribution in the same CSV format as
the web download. Output goes to stdout unless --out is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "distribution ID")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	_ = exportCmd.MarkFlagRequired("id")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	d, err := store.GetDistribution(ctx, exportID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("distribution %s not found", exportID)
	}
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, ferr := os.Create(exportOut)
		if ferr != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if _, err := io.WriteString(w, export.BOM); err != nil {
		return err
	}
	resolver := recipient.NewResolver(store, recipient.WithLogger(logger))
	if err := export.WriteDistribution(ctx, w, resolver, d); err != nil {
		return err
	}
	logger.Info("Exported distribution", "distribution_id", d.ID, "recipients", len(d.Recipients))
	return nil
}
