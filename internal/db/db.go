package db

import (
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/db/migrations"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	connectTimeout = 1 * time.Minute
	connectBackoff = 5 * time.Second
)

// New creates a new database connection for the configured driver and
// brings the schema up to date.
func New(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.EnvVars.DatabaseDriver, cfg.EnvVars.DatabaseUrl)
	if err != nil {
		return nil, err
	}

	database, err := connectToDatabaseWithRetry(dialector, cfg.EnvVars.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

// dialectorFor picks the gorm dialector. Postgres goes through lib/pq so
// unique violations surface as *pq.Error.
func dialectorFor(driver, url string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverSQLite:
		return sqlite.Open(url), nil
	case config.DriverPostgres:
		return postgres.New(postgres.Config{DriverName: "postgres", DSN: url}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// connectToDatabaseWithRetry connects to the database and retries if necessary.
func connectToDatabaseWithRetry(dialector gorm.Dialector, driver string) (*gorm.DB, error) {
	logger.Get().Info("connecting to database", zap.String("driver", driver))
	var database *gorm.DB
	var err error

	start := time.Now()
	for {
		database, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Since(start) > connectTimeout {
			return nil, fmt.Errorf("could not connect to database after 1 minute: %w", err)
		}
		logger.Get().Warn("could not connect to database, retrying...", zap.Error(err))
		time.Sleep(connectBackoff)
	}

	return database, nil
}

// Migrate creates missing tables and columns and the secondary indexes.
// Existing scraper tables are left intact; AutoMigrate only adds.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&models.Recipe{},
		&models.Ingredient{},
		&models.RecipeStep{},
		&models.User{},
		&models.Favorite{},
		&models.UserRecipe{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	return migrations.CreateIndexes(database)
}
