package db

import (
	"github.com/palette-dev/palette-picker/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection. The returned handle is passed to
// the handlers at startup rather than held as a package global.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Palette{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()

	if err != nil {
		return err
	}

	return sqlDB.Close()
}
