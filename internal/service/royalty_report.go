package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
	"github.com/labelgrid/royalty-engine/pkg/utils"
)

//go:generate mockery --name ReportBroadcaster --output ../mocks
type ReportBroadcaster interface {
	BroadcastReport(report *dto.RoyaltyReportResponse)
}

// RoyaltyReportService ingests platform royalty reports. A report and its
// earnings rows land atomically or not at all, and the report totals are
// always the sums over the ingested batch.
type RoyaltyReportService struct {
	repo        repository.Repository
	queueSvc    QueueService
	broadcaster ReportBroadcaster
}

func NewRoyaltyReportService(repo repository.Repository, queueSvc QueueService) *RoyaltyReportService {
	return &RoyaltyReportService{
		repo:     repo,
		queueSvc: queueSvc,
	}
}

// SetReportBroadcaster sets the WebSocket broadcaster
func (s *RoyaltyReportService) SetReportBroadcaster(broadcaster ReportBroadcaster) {
	s.broadcaster = broadcaster
}

func (s *RoyaltyReportService) Ingest(ctx context.Context, req dto.IngestRoyaltyReportRequest) (*dto.RoyaltyReportResponse, error) {
	if !domain.IsValidPlatform(req.Platform) {
		return nil, ErrInvalidPlatform
	}
	if !domain.IsValidPeriodType(req.PeriodType) {
		return nil, ErrInvalidPeriodType
	}
	periodStart, err := utils.ParseReportDate(req.PeriodStart)
	if err != nil {
		return nil, err
	}
	periodEnd, err := utils.ParseReportDate(req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	if periodEnd.Before(periodStart) {
		return nil, ErrInvalidPeriodRange
	}

	platform := domain.Platform(req.Platform)

	var totalStreams int64
	totalRevenue := decimal.Zero
	earnings := make([]domain.WorkEarnings, len(req.Earnings))
	for i, entry := range req.Earnings {
		if entry.Streams < 0 || entry.Revenue.IsNegative() {
			return nil, ErrNegativeEarnings
		}
		totalStreams += entry.Streams
		totalRevenue = totalRevenue.Add(entry.Revenue)
		earnings[i] = domain.WorkEarnings{
			WorkID:   entry.WorkID,
			Platform: platform,
			Streams:  entry.Streams,
			Revenue:  entry.Revenue,
		}
	}

	report := &domain.RoyaltyReport{
		TenantID:     req.TenantID,
		Platform:     platform,
		PeriodType:   domain.PeriodType(req.PeriodType),
		PeriodStart:  periodStart,
		PeriodEnd:    periodEnd,
		TotalStreams: totalStreams,
		TotalRevenue: totalRevenue,
	}

	created, err := s.repo.RoyaltyReport().CreateWithEarnings(ctx, report, earnings)
	if err != nil {
		return nil, err
	}

	// Send message to SQS for asynchronous report archiving
	if err := s.queueSvc.SendExportMessage(ctx, created, earnings); err != nil {
		fmt.Printf("failed to send export message to SQS: %v\n", err)
	}

	resp := dto.FromRoyaltyReport(created)

	// Broadcast to WebSocket clients if broadcaster is available
	if s.broadcaster != nil {
		s.broadcaster.BroadcastReport(resp)
	}

	return resp, nil
}

func (s *RoyaltyReportService) GetByID(ctx context.Context, id string) (*dto.RoyaltyReportResponse, error) {
	report, err := s.repo.RoyaltyReport().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromRoyaltyReport(report), nil
}

func (s *RoyaltyReportService) List(ctx context.Context, tenantID string) ([]dto.RoyaltyReportResponse, error) {
	reports, err := s.repo.RoyaltyReport().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromRoyaltyReports(reports), nil
}

func (s *RoyaltyReportService) ListEarnings(ctx context.Context, reportID string) ([]dto.WorkEarningsResponse, error) {
	if _, err := s.repo.RoyaltyReport().GetByID(ctx, reportID); err != nil {
		return nil, err
	}

	earnings, err := s.repo.RoyaltyReport().ListEarnings(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return dto.FromWorkEarnings(earnings), nil
}
