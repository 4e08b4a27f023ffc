package main

import (
	"context"
	"fmt"

	"raisedesk/config"
	"raisedesk/database"
	"raisedesk/database/repository"
	"raisedesk/utils"

	"go.uber.org/zap"
)

// bootstrap loads configuration, the logger and the custom validators.
func bootstrap() (*zap.Logger, error) {
	config.LoadConfig()
	logger := utils.GetLogger()
	if err := utils.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	return logger, nil
}

// openStore returns the repository set for the configured driver.
func openStore(ctx context.Context, logger *zap.Logger) (*repository.Store, error) {
	switch config.AppConfig.StoreDriver {
	case config.StoreMemory:
		logger.Info("using in-memory store")
		return repository.NewMemoryStore(), nil
	case config.StoreMongo:
		if err := database.InitDB(ctx); err != nil {
			return nil, err
		}
		logger.Info("connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
		return repository.NewMongoStore(ctx, database.DB())
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", config.AppConfig.StoreDriver)
	}
}
