package config

import (
	"fmt"
	"log"

	"crop-procurement-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the gorm dialect for the configured driver.
func Dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "mysql":
		port := cfg.Port
		if port == "" {
			port = "3306"
		}
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			port,
			cfg.Database,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host, port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// OpenDB connects using the configured driver. In production SQL logs are
// suppressed unless DEBUG_SQL=true.
func OpenDB(cfg DatabaseConfig, production bool) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Info
	if production && !cfg.DebugSQL {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel, IgnoreRecordNotFoundError: true},
		),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	log.Printf("Database connected successfully (%s)", cfg.Driver)
	return db, nil
}

// AutoMigrate creates or updates every table the service owns. Users are
// migrated first so the submission relations resolve against the full table.
func AutoMigrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.CropSubmission{},
		&models.CropSubmissionStatusHistory{},
		&models.Notification{},
	}
	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", table, err)
		}
	}
	return nil
}
