// Command migrate creates or updates the crop procurement tables and can
// seed a demo farmer and officer for local development.
package main

import (
	"flag"
	"log"
	"time"

	"crop-procurement-api/config"
	"crop-procurement-api/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var seedDemo bool
	flag.BoolVar(&seedDemo, "seed-demo", false, "insert a demo farmer and officer (skipped if their e-mails exist)")
	flag.Parse()

	cfg := config.Load()
	db, err := config.OpenDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.AutoMigrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("✅ migrations completed")

	if !seedDemo {
		return
	}
	if err := seedDemoUsers(db); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func seedDemoUsers(db *gorm.DB) error {
	now := time.Now().UTC()
	users := []models.User{
		{ID: uuid.NewString(), Name: "Demo Farmer", Email: "farmer@example.local", UserType: models.UserTypeFarmer, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Demo Officer", Email: "officer@example.local", UserType: models.UserTypeOfficer, CreatedAt: now, UpdatedAt: now},
	}
	for i := range users {
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users[i])
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			log.Printf("ℹ️  %s already present", users[i].Email)
			continue
		}
		log.Printf("➕ %s %s id=%s", users[i].UserType, users[i].Email, users[i].ID)
	}
	return nil
}
