package cli

import (
	"fmt"

	"github.com/J-Castrillon/InventoryManagement/internal/config"
	"github.com/J-Castrillon/InventoryManagement/internal/database"
	"github.com/J-Castrillon/InventoryManagement/internal/repositories"

	"go.uber.org/zap"
)

// openStore builds the product repository selected by the configuration. The
// returned close function releases the database connection, if any.
func openStore(cfg *config.Config, logger *zap.Logger) (repositories.ProductRepository, func(), error) {
	if cfg.DatabaseDriver == database.DriverMemory {
		logger.Warn("using the in-memory product store, data is lost on exit")
		return repositories.NewMemoryProductRepository(), func() {}, nil
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}

	if err := database.Migrate(db); err != nil {
		closeDB()
		return nil, nil, err
	}
	logger.Info("connected to database", zap.String("driver", cfg.DatabaseDriver))
	return repositories.NewGORMProductRepository(db), closeDB, nil
}
