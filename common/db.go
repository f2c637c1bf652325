package common

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDb opens the sqlite database backing the API. TranslateError is
// on so unique-constraint violations surface as gorm.ErrDuplicatedKey,
// which the handlers treat as the authoritative conflict signal.
func ConnectDb(dbFile string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Println("Error opening sqlite db: " + err.Error())
		return nil, err
	}
	log.Println("opened sqlite db at:", dbFile)
	return db, nil
}
