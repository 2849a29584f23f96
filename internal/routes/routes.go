package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	handler "sms-expense-backend/internal/handlers"
	"sms-expense-backend/internal/repository"
	"sms-expense-backend/internal/services/ingest"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log zerolog.Logger) {
	paymentModeRepo := repository.NewPaymentModeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	ingestService := ingest.NewService(paymentModeRepo, expenseRepo, db, log)

	ingestHandler := handler.NewIngestHandler(ingestService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Message ingestion routes
	messages := api.Group("/messages")
	messages.POST("", ingestHandler.IngestMessage)
	messages.POST("/upload", ingestHandler.UploadBackup)

	// Batch progress
	api.GET("/batches/:batchId", ingestHandler.GetBatchProgress)

	// Ledger views
	api.GET("/expenses", ingestHandler.ListExpenses)
	api.GET("/payment-modes", ingestHandler.ListPaymentModes)
}
