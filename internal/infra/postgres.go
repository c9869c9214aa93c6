package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"tiew/internal/config"
	"tiew/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, log *zap.Logger) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})

	if err != nil {
		log.Fatal("Error connecting to database", zap.Error(err))
	}

	if err := Migrate(connectionPool); err != nil {
		log.Fatal("Error migrating database", zap.Error(err))
	}

	return connectionPool
}

// Migrate creates the tables backing visitor preferences, content collections and the place cache.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Preference{},
		&db_models.ContentCollection{},
		&db_models.CachedPlace{},
	)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", zap.Error(err))
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}
