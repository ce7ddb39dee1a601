package db

import (
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}
