package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
	"github.com/labelgrid/royalty-engine/internal/service/queue"
	"github.com/labelgrid/royalty-engine/pkg/logger"
)

// DeliveryWorker consumes dispatch messages and performs platform delivery:
// it writes one delivery manifest per requested platform to the delivery
// bucket, then resolves the work's distribution status to live or failed.
type DeliveryWorker struct {
	sqsService   *queue.SQSService
	repository   repository.PostgresRepository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
}

func NewDeliveryWorker(
	sqsService *queue.SQSService,
	repository repository.PostgresRepository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *DeliveryWorker {
	return &DeliveryWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
	}
}

func (w *DeliveryWorker) Start() {
	w.logger.Info("Starting Delivery workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *DeliveryWorker) Stop() {
	w.logger.Info("Stopping Delivery workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All Delivery workers stopped")
}

func (w *DeliveryWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Delivery Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Delivery Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Delivery Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *DeliveryWorker) processMessages(ctx context.Context) error {
	config := config.DefaultSQSConfig()
	dispatchQueueURL := config.DispatchQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, dispatchQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeDispatch {
			continue
		}

		if err := w.processDispatchMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process dispatch message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, dispatchQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *DeliveryWorker) processDispatchMessage(ctx context.Context, msg queue.Message) error {
	if msg.Work == nil {
		return fmt.Errorf("dispatch message for work %s carries no work document", msg.WorkID)
	}

	w.logger.Infof("Delivering work %s for tenant %s to %d platforms",
		msg.WorkID, msg.TenantID, len(msg.Platforms))

	deliveryErr := w.deliverToPlatforms(ctx, msg)

	status := domain.DistributionLive
	if deliveryErr != nil {
		w.logger.Errorf("Delivery failed for work %s: %v", msg.WorkID, deliveryErr)
		status = domain.DistributionFailed
	}

	resolved, err := w.repository.Work().ResolveDistribution(ctx, msg.WorkID, status)
	if err != nil {
		return fmt.Errorf("failed to resolve distribution for work %s: %w", msg.WorkID, err)
	}
	if !resolved {
		w.logger.Warnf("Work %s was not in processing, leaving its status untouched", msg.WorkID)
		return nil
	}

	w.logger.Infof("Work %s resolved to %s", msg.WorkID, status)
	return nil
}

// deliverToPlatforms writes one manifest per platform. The first failed
// upload aborts the attempt and fails the whole delivery.
func (w *DeliveryWorker) deliverToPlatforms(ctx context.Context, msg queue.Message) error {
	for _, platform := range msg.Platforms {
		if err := w.uploadManifest(ctx, platform, msg); err != nil {
			return fmt.Errorf("platform %s: %w", platform, err)
		}
	}
	return nil
}

func (w *DeliveryWorker) uploadManifest(ctx context.Context, platform string, msg queue.Message) error {
	s3Key := fmt.Sprintf("deliveries/%s/%s/%s_%s.json",
		platform,
		msg.TenantID,
		msg.WorkID,
		time.Now().Format("2006-01-02_15-04-05"))

	manifest := map[string]interface{}{
		"platform":     platform,
		"tenant_id":    msg.TenantID,
		"delivered_at": time.Now(),
		"work":         msg.Work,
	}

	jsonData, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal delivery manifest: %w", err)
	}

	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.DeliveryBucket,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &[]string{"application/json"}[0],
		Metadata: map[string]string{
			"tenant-id":    msg.TenantID,
			"work-id":      msg.WorkID,
			"platform":     platform,
			"delivered-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload delivery manifest to S3: %w", err)
	}

	w.logger.Infof("Uploaded delivery manifest to S3: s3://%s/%s", w.s3Config.DeliveryBucket, s3Key)
	return nil
}
