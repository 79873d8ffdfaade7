package config

import (
	"log"
	"os"
	"path/filepath"

	"expiry-tracker/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dbPath := utils.GetConfig("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join("DB", "product.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), os.ModePerm); err != nil {
		log.Fatalf("Database directory creation failed: %v", err)
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
