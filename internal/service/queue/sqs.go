package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/domain"
)

type MessageType string

const (
	MessageTypeDispatch MessageType = "DISPATCH"
	MessageTypeIndex    MessageType = "INDEX"
	MessageTypeExport   MessageType = "EXPORT"
)

type Message struct {
	Type      MessageType `json:"type"`
	TenantID  string      `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`

	// Fields for dispatch operations
	WorkID    string   `json:"work_id,omitempty"`
	Platforms []string `json:"platforms,omitempty"`

	// Work projection, carried on dispatch and index messages so the
	// workers do not need to re-read the catalog
	Work *domain.WorkDocument `json:"work,omitempty"`

	// Fields for export operations
	Report   *domain.RoyaltyReport `json:"report,omitempty"`
	Earnings []domain.WorkEarnings `json:"earnings,omitempty"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client           *sqs.Client
	dispatchQueueURL string
	indexQueueURL    string
	exportQueueURL   string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:           client,
		dispatchQueueURL: config.DispatchQueueURL,
		indexQueueURL:    config.IndexQueueURL,
		exportQueueURL:   config.ExportQueueURL,
	}
}

func (s *SQSService) SendDispatchMessage(ctx context.Context, work *domain.WorkDocument, platforms []string) error {
	msg := Message{
		Type:      MessageTypeDispatch,
		TenantID:  work.TenantID,
		WorkID:    work.ID,
		Platforms: platforms,
		Work:      work,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.dispatchQueueURL)
}

func (s *SQSService) SendIndexMessage(ctx context.Context, work *domain.WorkDocument) error {
	msg := Message{
		Type:      MessageTypeIndex,
		TenantID:  work.TenantID,
		WorkID:    work.ID,
		Work:      work,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendExportMessage(ctx context.Context, report *domain.RoyaltyReport, earnings []domain.WorkEarnings) error {
	msg := Message{
		Type:      MessageTypeExport,
		TenantID:  report.TenantID,
		Report:    report,
		Earnings:  earnings,
		Timestamp: time.Now(),
	}

	return s.sendMessage(ctx, msg, s.exportQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		var message Message
		if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
