package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/repository/postgres"
	"github.com/labelgrid/royalty-engine/internal/service/queue"
	"github.com/labelgrid/royalty-engine/internal/worker"
	"github.com/labelgrid/royalty-engine/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	// Create delivery worker
	deliveryWorker := worker.NewDeliveryWorker(
		sqsService,
		pgRepo,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
		s3Client,
		s3Config,
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start worker
	go func() {
		appLogger.Info("Starting delivery worker...")
		deliveryWorker.Start()
	}()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down delivery worker...")

	// Stop worker
	deliveryWorker.Stop()
	appLogger.Info("Delivery worker stopped")
}
