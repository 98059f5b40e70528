package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
	"github.com/labelgrid/royalty-engine/pkg/utils"
)

const topWorksLimit = 5

// AnalyticsService computes reporting rollups on demand from the earnings
// ledger. Nothing is cached, so every answer reflects all reports ingested
// so far.
type AnalyticsService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewAnalyticsService(repo repository.Repository) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *AnalyticsService) GetTenantAnalytics(ctx context.Context, tenantID string) (*dto.TenantAnalyticsResponse, error) {
	if _, err := s.repo.Tenant().GetByID(ctx, tenantID); err != nil {
		return nil, err
	}

	totalArtists, err := s.repo.Artist().CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totalWorks, err := s.repo.Work().CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.Analytics().TenantTotals(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	growth, err := s.monthlyGrowth(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	topWorks, err := s.repo.Analytics().TopWorksByStreams(ctx, tenantID, topWorksLimit)
	if err != nil {
		return nil, err
	}

	return dto.FromTenantAnalytics(&domain.TenantAnalytics{
		TenantID:           tenantID,
		TotalArtists:       totalArtists,
		TotalWorks:         totalWorks,
		TotalStreams:       totals.Streams,
		TotalRevenue:       totals.Revenue,
		MonthlyGrowth:      growth,
		TopPerformingWorks: topWorks,
	}), nil
}

// monthlyGrowth compares report revenue of the current calendar month
// against the previous one, in percent. Growth is zero when the previous
// month has no revenue, so a label's first month never divides by zero.
func (s *AnalyticsService) monthlyGrowth(ctx context.Context, tenantID string) (decimal.Decimal, error) {
	currentStart := utils.MonthStart(s.now())
	nextStart := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	current, err := s.repo.Analytics().TenantRevenueBetween(ctx, tenantID, currentStart, nextStart)
	if err != nil {
		return decimal.Zero, err
	}
	previous, err := s.repo.Analytics().TenantRevenueBetween(ctx, tenantID, previousStart, currentStart)
	if err != nil {
		return decimal.Zero, err
	}

	if previous.IsZero() {
		return decimal.Zero, nil
	}

	hundred := decimal.NewFromInt(100)
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2), nil
}

func (s *AnalyticsService) GetArtistAnalytics(ctx context.Context, artistID string) (*dto.ArtistAnalyticsResponse, error) {
	if _, err := s.repo.Artist().GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	totalWorks, err := s.repo.Work().CountByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.Analytics().ArtistTotals(ctx, artistID)
	if err != nil {
		return nil, err
	}
	monthly, err := s.repo.Analytics().ArtistMonthlyEarnings(ctx, artistID)
	if err != nil {
		return nil, err
	}
	platforms, err := s.repo.Analytics().ArtistPlatformBreakdown(ctx, artistID)
	if err != nil {
		return nil, err
	}

	return dto.FromArtistAnalytics(&domain.ArtistAnalytics{
		ArtistID:          artistID,
		TotalWorks:        totalWorks,
		TotalStreams:      totals.Streams,
		TotalRevenue:      totals.Revenue,
		MonthlyStreams:    monthly,
		PlatformBreakdown: platforms,
	}), nil
}
