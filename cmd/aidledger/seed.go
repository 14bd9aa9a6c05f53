package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML fixture into the database",
	Long: `Create staff accounts, registry records and historical distributions
from a fixture file. Accounts that already exist are skipped.

Example:
  aidledger seed --file internal/seed/testdata/demo.yaml`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fx, err := seed.Load(seedFile)
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	builder := distribution.NewBuilder(
		recipient.NewResolver(store, recipient.WithLogger(logger)),
		distribution.WithReconcile(cfg.Allocation.ReconcileRounding),
		distribution.WithLogger(logger),
	)
	s := seed.New(store, auth.NewPasswordAuthenticator(store), builder, logger)

	sum, err := s.Apply(ctx, fx)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users (%d skipped), %d individuals, %d families, %d children, %d distributions\n",
		sum.Users, sum.SkippedUsers, sum.Individuals, sum.Families, sum.Children, sum.Distributions)
	return nil
}
