package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/enterprisetech/admin-seed/config"
	"github.com/enterprisetech/admin-seed/models"
)

// Open connects to the store described by cfg using dsn. SQLite databases
// are limited to a single connection with foreign keys enforced.
func Open(cfg config.Database, dsn string) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Provider, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if isSQLite(cfg.Provider) {
		// Single connection for SQLite to avoid locking issues.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Provider, err)
	}

	return db, nil
}

// Connect resolves the DSN from the environment variable named by the
// config and opens the store.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}
	return Open(cfg.Database, dsn)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// WithDB opens the store, runs fn and closes the store whether fn succeeded
// or not. A close failure is reported alongside fn's error.
func WithDB(cfg *config.Config, log *zap.Logger, fn func(db *gorm.DB) error) (err error) {
	db, err := Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := Close(db); closeErr != nil {
			log.Warn("closing database failed", zap.Error(closeErr))
			err = errors.Join(err, fmt.Errorf("close database: %w", closeErr))
			return
		}
		log.Debug("database connection closed")
	}()

	return fn(db)
}

// Migrate creates or updates every table, index and foreign key the seed
// data needs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func dialectorFor(cfg config.Database, dsn string) (gorm.Dialector, error) {
	switch cfg.Provider {
	case "postgres", "postgresql":
		return postgres.New(postgres.Config{
			DSN:        dsn,
			DriverName: cfg.DriverName,
		}), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", cfg.Provider)
	}
}

func isSQLite(provider string) bool {
	return provider == "sqlite" || provider == "sqlite3"
}

func logLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
