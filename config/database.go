package config

import (
	"fmt"
	"time"

	"github.com/Govind-619/CorpSite/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AllModels lists every table owned by the application
func AllModels() []interface{} {
	return []interface{}{
		&models.PaymentOrder{},
		&models.WebhookEvent{},
		&models.Company{},
		&models.Service{},
		&models.TeamMember{},
		&models.BlogPost{},
		&models.Testimonial{},
		&models.Career{},
		&models.Contact{},
	}
}

// InitDB opens the postgres connection described by cfg
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if !cfg.IsProduction() {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
