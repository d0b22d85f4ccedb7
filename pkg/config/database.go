package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"pointscontrol/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	// Auto migrate all models
	if err := AutoMigrateModels(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// AutoMigrateModels creates or updates the tables for every model. Trigger
// DDL is versioned separately under migrations/ and applied by golang-migrate.
func AutoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Token{},
		&models.Partner{},
		&models.PartnerPool{},
		&models.PartnerPoolUniswapV3{},
		&models.PartnerUniswapV3LP{},
		&models.PartnerUniswapV3Tick{},
		&models.PartnerUniswapV3Event{},
		&models.PartnerUserPosition{},
		&models.PartnerProtocolEvent{},
		&models.PartnerProtocolSnapshot{},
		&models.PointsPointType{},
		&models.PointsCampaign{},
		&models.PointsUserCampaignPoints{},
		&models.PointsUserPoint{},
		&models.PointsUserPointHistory{},
		&models.PointsPartnerSnapshot{},
		&models.Vault{},
		&models.VaultsUserPosition{},
		&models.VaultsUserPositionHistory{},
	)
}
