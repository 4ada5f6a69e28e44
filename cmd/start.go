package cmd

import (
	"fmt"

	"stock-api/core/config"
	coredb "stock-api/core/database"
	"stock-api/core/logger"
	"stock-api/core/server"
	"stock-api/core/storage"
	"stock-api/feature/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Stock API
// @version 1.0
// @description Fundamentals, quotations and ranked indicators.
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server on PORT (default 5000) and mounts the database routes under /database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		db := connectDatabase(cfg.Database, logg)

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		// 5. Build the database router
		svc := database.NewService(db, store, cfg.Storage.Bucket, cfg.Storage.Region, logg)
		if db != nil {
			if err := svc.Migrate(); err != nil {
				return err
			}
		}

		// 6. Start Server; runs until the process is killed
		srv := server.New(cfg.Server, logg, database.NewRouter(svc))
		return srv.Listen()
	},
}

// connectDatabase returns nil when the database cannot be reached.
func connectDatabase(cfg coredb.Config, logg *zap.Logger) *gorm.DB {
	db, err := coredb.Connect(cfg)
	if err != nil {
		logg.Debug("Optional database connection failed", zap.Error(err))
		return nil
	}
	logg.Debug("Connected to database", zap.String("driver", cfg.Driver))
	return db
}

func init() {
	RootCmd.AddCommand(startCmd)
}
