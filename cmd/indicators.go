package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"stock-api/core/config"
	coredb "stock-api/core/database"
	"stock-api/core/logger"
	"stock-api/core/storage"
	"stock-api/feature/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indicatorsCmd prints or archives the current ranking
var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Print the ranked indicators as JSON",
	Long:  `Ranks every stored fundamental and prints the result. With --snapshot the ranking is archived in the storage bucket instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, _ := cmd.Flags().GetBool("snapshot")

		ctx, cancel := commandTimeout(cmd.Context())
		defer cancel()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		db, err := coredb.Connect(cfg.Database)
		if err != nil {
			return err
		}

		var store storage.Client
		if snapshot {
			if !cfg.Storage.Enabled {
				return errors.New("storage is disabled; set STORAGE_ENABLED=true to archive snapshots")
			}
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				return err
			}
		}

		svc := database.NewService(db, store, cfg.Storage.Bucket, cfg.Storage.Region, logg)

		if snapshot {
			name, err := svc.Snapshot(ctx, true)
			if err != nil {
				return err
			}
			logg.Info("Snapshot archived", zap.String("object", name))
			return nil
		}

		indicators, err := svc.Indicators(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(indicators)
	},
}

func init() {
	indicatorsCmd.Flags().Bool("snapshot", false, "Archive the ranking in object storage")
	RootCmd.AddCommand(indicatorsCmd)
}

// commandTimeout bounds one-shot CLI commands.
func commandTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, 5*time.Minute)
}
