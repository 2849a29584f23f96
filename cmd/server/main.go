package main

import (
	"log"
	"time"

	"sms-expense-backend/internal/config"
	"sms-expense-backend/internal/logger"
	"sms-expense-backend/internal/models"
	"sms-expense-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	logg := logger.New()

	db := config.InitDB()

	db.AutoMigrate(
		&models.PaymentMode{},
		&models.Expense{},
		&models.IngestBatch{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logg)

	r.Run(":8080")
}
