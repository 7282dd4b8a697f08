package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/models"
)

var DB *gorm.DB

// Connect initializes the snapshot store and runs migrations. Postgres is
// used when a DSN is given; otherwise an embedded sqlite file under dataDir.
func Connect(dsn, dataDir string) error {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		dialector = sqlite.Open(filepath.Join(dataDir, "analytics.db"))
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return fmt.Errorf("connect snapshot store: %w", err)
	}

	if err := DB.AutoMigrate(&models.Game{}); err != nil {
		return fmt.Errorf("migrate snapshot store: %w", err)
	}
	return nil
}

// SaveSnapshot replaces the stored snapshot with the given rows.
func SaveSnapshot(games []models.Game) error {
	if DB == nil {
		return fmt.Errorf("snapshot store not connected")
	}
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Game{}).Error; err != nil {
			return err
		}
		if len(games) == 0 {
			return nil
		}
		return tx.CreateInBatches(games, 500).Error
	})
}

// LoadSnapshot returns the stored snapshot rows.
func LoadSnapshot() ([]models.Game, error) {
	if DB == nil {
		return nil, fmt.Errorf("snapshot store not connected")
	}
	var games []models.Game
	if err := DB.Order("app_id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}
