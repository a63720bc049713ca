package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// OpenDB opens the sqlite database and migrates the schema. Only used
// when DB_DRIVER=sqlite; the default deployment runs fully in memory.
func OpenDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.MenuItem{}, &entity.Order{}); err != nil {
		return nil, err
	}
	return db, nil
}
