package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Brianlih/orderflow-be/config"
	"github.com/Brianlih/orderflow-be/models"
	"github.com/Brianlih/orderflow-be/router"
	"github.com/Brianlih/orderflow-be/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := autoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Table{},
		&models.Category{},
		&models.Allergen{},
		&models.MenuItem{},
		&models.MenuItemAllergen{},
		&models.CustomizationOption{},
		&models.CustomizationChoice{},
		&models.Ingredient{},
		&models.MenuItemRecipe{},
		&models.InventoryTransaction{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderCustomization{},
		&models.QRSession{},
	)
}
