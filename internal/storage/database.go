package storage

import (
	"github.com/dfalcao/tempoclash/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens the SQLite database at dataSourceName and keeps the schema
// updated via AutoMigrate. Card and enemy stats are never persisted; the
// config file is the single source of truth for definitions.
func OpenDB(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Run{}, &game.Battle{}, &game.PlayerProfile{}); err != nil {
		return nil, err
	}
	return db, nil
}
