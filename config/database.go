package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pratapadwait/pratapliving/models"
)

var DB *gorm.DB

// buildDSN prefers DATABASE_URL and falls back to the discrete PG_*
// variables with local defaults.
func buildDSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := GetEnv("PG_HOST", "localhost")
	port := GetEnv("PG_PORT", "5432")
	user := GetEnv("PG_USER", "postgres")
	password := GetEnv("PG_PASSWORD", "postgres")
	name := GetEnv("PG_DATABASE", "pratapliving")
	sslmode := GetEnv("PG_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

func ConnectDB() error {
	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}

	if err := DB.AutoMigrate(
		&models.Property{},
		&models.PartnerInquiry{},
		&models.ContactInquiry{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	log.Println("connected to postgres")
	return nil
}
