package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"warehouse-service/internal/config"
	"warehouse-service/internal/metrics"
)

// Init opens the database connection with configuration and applies the
// connection pool settings.
func Init(dbConfig *config.DBConfig) (*gorm.DB, error) {
	defer metrics.TrackDBOperation("connect")(time.Now())

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dbConfig.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	db, err := gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: gormlogger.Default.LogMode(dbConfig.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Get generic database object to configure the pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database object: %w", err)
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)

	return db, nil
}
