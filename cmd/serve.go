package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"board-game-reviews/internal/data/repository"
	"board-game-reviews/internal/wire"
	"board-game-reviews/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API and block until SIGINT or SIGTERM.

Examples:
  board-game-reviews serve             # Serve on $PORT
  board-game-reviews serve --migrate   # Apply pending migrations first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
}

func runServe(parent context.Context) error {
	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if migrateOnStart {
		if err := migrateUp(config.Database.MigrateURL(), logger); err != nil {
			return err
		}
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	logger.Info("Database connected successfully",
		zap.Int32("max_conns", config.Database.MaxConns),
	)

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, config, logger)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}
