package migration

import (
	"context"
	"fmt"
	"log"

	"expiry-tracker/entities"
	"expiry-tracker/pkg/user"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating users table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product table: %v", err)
		return err
	}

	// Seed the default user the first time the table comes up empty.
	if err := user.NewUserRepository(db).EnsureSchema(context.Background(), true); err != nil {
		log.Fatalf("Error seeding default user: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
