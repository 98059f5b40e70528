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
	"github.com/labelgrid/royalty-engine/internal/service/queue"
	"github.com/labelgrid/royalty-engine/pkg/logger"
)

// ExportWorker consumes export messages and archives every processed
// royalty report with its earnings decomposition to the export bucket.
type ExportWorker struct {
	sqsService   *queue.SQSService
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

func NewExportWorker(
	sqsService *queue.SQSService,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
) *ExportWorker {
	return &ExportWorker{
		sqsService:   sqsService,
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

func (w *ExportWorker) Start() {
	w.logger.Info("Starting Export workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ExportWorker) Stop() {
	w.logger.Info("Stopping Export workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All Export workers stopped")
}

func (w *ExportWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Export Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Export Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Export Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ExportWorker) processMessages(ctx context.Context) error {
	config := config.DefaultSQSConfig()
	exportQueueURL := config.ExportQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, exportQueueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeExport {
			continue
		}

		if err := w.processExportMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process export message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, exportQueueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ExportWorker) processExportMessage(ctx context.Context, msg queue.Message) error {
	if msg.Report == nil {
		return fmt.Errorf("export message for tenant %s carries no report", msg.TenantID)
	}

	w.logger.Infof("Exporting report %s for tenant %s (%s %s)",
		msg.Report.ID, msg.TenantID, msg.Report.Platform, msg.Report.PeriodStart.Format("2006-01-02"))

	s3Key := fmt.Sprintf("reports/%s/%s/%s_%s.json",
		msg.TenantID,
		msg.Report.Platform,
		msg.Report.PeriodStart.Format("2006-01-02"),
		msg.Report.ID)

	exportData := map[string]interface{}{
		"report":      msg.Report,
		"earnings":    msg.Earnings,
		"exported_at": time.Now(),
	}

	jsonData, err := json.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report export: %w", err)
	}

	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.ExportBucket,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &[]string{"application/json"}[0],
		Metadata: map[string]string{
			"tenant-id":   msg.TenantID,
			"report-id":   msg.Report.ID,
			"platform":    string(msg.Report.Platform),
			"exported-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload report export to S3: %w", err)
	}

	w.logger.Infof("Successfully uploaded report export to S3: s3://%s/%s", w.s3Config.ExportBucket, s3Key)
	return nil
}
