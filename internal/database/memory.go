package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenInMemory opens a private, migrated in-memory SQLite database. Each call
// gets its own named shared-cache database so pooled connections see the same
// tables while separate callers stay isolated.
func OpenInMemory() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:framez-%s?mode=memory&cache=shared", uuid.New().String())
	db, err := Open("sqlite", dsn, nil)
	if err != nil {
		return nil, err
	}
	if err := MigrateDB(db); err != nil {
		return nil, err
	}
	return db, nil
}
