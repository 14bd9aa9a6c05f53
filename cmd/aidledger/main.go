// Command aidledger runs the AidLedger server and its maintenance tasks.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/aidledger/internal/app"
	"github.com/mmynk/aidledger/internal/config"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/pkg/logging"
)

var (
	configPath string
	envFile    string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aidledger",
	Short: "Case management and aid distribution server",
	Long: `AidLedger keeps a registry of individuals, families and children and
records the aid distributed to them.

Configuration is read from the YAML file given by --config, then from the
.env file, then from environment variables (later wins).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to a .env file")

	rootCmd.AddCommand(serveCmd, seedCmd, exportCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = c
	logger = logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

// openStore opens the configured store and logs where it lives.
func openStore(ctx context.Context) (storage.Store, error) {
	store, err := app.OpenStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	logger.Info("Storage initialized", "driver", cfg.Database.Driver)
	return store, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
