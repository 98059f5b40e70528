package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockRepo      *mocks.Repository
	mockTenant    *mocks.TenantRepository
	mockArtist    *mocks.ArtistRepository
	mockWork      *mocks.WorkRepository
	mockAnalytics *mocks.AnalyticsRepository
	service       *AnalyticsService
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockArtist = new(mocks.ArtistRepository)
	s.mockWork = new(mocks.WorkRepository)
	s.mockAnalytics = new(mocks.AnalyticsRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Artist").Return(s.mockArtist)
	s.mockRepo.On("Work").Return(s.mockWork)
	s.mockRepo.On("Analytics").Return(s.mockAnalytics)

	s.service = NewAnalyticsService(s.mockRepo)
	s.service.now = func() time.Time {
		return time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) TestGetTenantAnalytics_Success() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", Name: "Velvet Records", IsActive: true}
	juneStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	julyStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	augustStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	topWorks := []domain.WorkPerformance{
		{WorkID: "work1", Title: "Midnight Transit", ArtistName: "Nova Atlas", Streams: 150000},
	}

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockArtist.On("CountByTenant", ctx, "tenant1").Return(int64(4), nil)
	s.mockWork.On("CountByTenant", ctx, "tenant1").Return(int64(17), nil)
	s.mockAnalytics.On("TenantTotals", ctx, "tenant1").
		Return(&domain.EarningsTotals{Streams: 1250000, Revenue: decimal.RequireFromString("4821.90")}, nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", julyStart, augustStart).
		Return(decimal.NewFromInt(1500), nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", juneStart, julyStart).
		Return(decimal.NewFromInt(1000), nil)
	s.mockAnalytics.On("TopWorksByStreams", ctx, "tenant1", topWorksLimit).Return(topWorks, nil)

	// Act
	resp, err := s.service.GetTenantAnalytics(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.Equal("tenant1", resp.TenantID)
	s.Equal(int64(4), resp.TotalArtists)
	s.Equal(int64(17), resp.TotalWorks)
	s.Equal(int64(1250000), resp.TotalStreams)
	s.True(resp.MonthlyGrowth.Equal(decimal.NewFromInt(50)))
	s.Len(resp.TopPerformingWorks, 1)
	s.mockAnalytics.AssertExpectations(s.T())
}

func (s *AnalyticsServiceTestSuite) TestGetTenantAnalytics_GrowthZeroWithoutPreviousRevenue() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", IsActive: true}
	juneStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	julyStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	augustStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockArtist.On("CountByTenant", ctx, "tenant1").Return(int64(1), nil)
	s.mockWork.On("CountByTenant", ctx, "tenant1").Return(int64(2), nil)
	s.mockAnalytics.On("TenantTotals", ctx, "tenant1").
		Return(&domain.EarningsTotals{Streams: 5000, Revenue: decimal.NewFromInt(20)}, nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", julyStart, augustStart).
		Return(decimal.NewFromInt(20), nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", juneStart, julyStart).
		Return(decimal.Zero, nil)
	s.mockAnalytics.On("TopWorksByStreams", ctx, "tenant1", topWorksLimit).
		Return([]domain.WorkPerformance{}, nil)

	// Act
	resp, err := s.service.GetTenantAnalytics(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.True(resp.MonthlyGrowth.IsZero())
}

func (s *AnalyticsServiceTestSuite) TestGetTenantAnalytics_WorksWithoutEarnings() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", IsActive: true}
	juneStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	julyStart := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	augustStart := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockArtist.On("CountByTenant", ctx, "tenant1").Return(int64(2), nil)
	s.mockWork.On("CountByTenant", ctx, "tenant1").Return(int64(3), nil)
	s.mockAnalytics.On("TenantTotals", ctx, "tenant1").
		Return(&domain.EarningsTotals{Streams: 0, Revenue: decimal.Zero}, nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", julyStart, augustStart).
		Return(decimal.Zero, nil)
	s.mockAnalytics.On("TenantRevenueBetween", ctx, "tenant1", juneStart, julyStart).
		Return(decimal.Zero, nil)
	s.mockAnalytics.On("TopWorksByStreams", ctx, "tenant1", topWorksLimit).
		Return([]domain.WorkPerformance{}, nil)

	// Act
	resp, err := s.service.GetTenantAnalytics(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.Equal(int64(3), resp.TotalWorks)
	s.Equal(int64(0), resp.TotalStreams)
	s.True(resp.TotalRevenue.IsZero())
	s.True(resp.MonthlyGrowth.IsZero())
	s.Empty(resp.TopPerformingWorks)
}

func (s *AnalyticsServiceTestSuite) TestGetTenantAnalytics_TenantNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, domain.ErrTenantNotFound)

	// Act
	resp, err := s.service.GetTenantAnalytics(ctx, "missing")

	// Assert
	s.ErrorIs(err, domain.ErrTenantNotFound)
	s.Nil(resp)
}

func (s *AnalyticsServiceTestSuite) TestGetArtistAnalytics_Success() {
	// Arrange
	ctx := context.Background()
	artist := &domain.Artist{ID: "artist1", TenantID: "tenant1", StageName: "Nova Atlas"}
	monthly := []domain.MonthlyEarnings{
		{Month: "2025-05", Streams: 180000, Revenue: decimal.RequireFromString("650.10")},
		{Month: "2025-06", Streams: 230000, Revenue: decimal.RequireFromString("852.25")},
	}
	platforms := []domain.PlatformEarnings{
		{Platform: domain.PlatformSpotify, Streams: 300000, Revenue: decimal.RequireFromString("1100.00")},
		{Platform: domain.PlatformDeezer, Streams: 110000, Revenue: decimal.RequireFromString("402.35")},
	}

	s.mockArtist.On("GetByID", ctx, "artist1").Return(artist, nil)
	s.mockWork.On("CountByArtist", ctx, "artist1").Return(int64(6), nil)
	s.mockAnalytics.On("ArtistTotals", ctx, "artist1").
		Return(&domain.EarningsTotals{Streams: 410000, Revenue: decimal.RequireFromString("1502.35")}, nil)
	s.mockAnalytics.On("ArtistMonthlyEarnings", ctx, "artist1").Return(monthly, nil)
	s.mockAnalytics.On("ArtistPlatformBreakdown", ctx, "artist1").Return(platforms, nil)

	// Act
	resp, err := s.service.GetArtistAnalytics(ctx, "artist1")

	// Assert
	s.NoError(err)
	s.Equal("artist1", resp.ArtistID)
	s.Equal(int64(6), resp.TotalWorks)
	s.Equal(int64(410000), resp.TotalStreams)
	s.Len(resp.MonthlyStreams, 2)
	s.Len(resp.PlatformBreakdown, 2)
	s.mockAnalytics.AssertExpectations(s.T())
}

func (s *AnalyticsServiceTestSuite) TestGetArtistAnalytics_ArtistNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockArtist.On("GetByID", ctx, "missing").Return(nil, domain.ErrArtistNotFound)

	// Act
	resp, err := s.service.GetArtistAnalytics(ctx, "missing")

	// Assert
	s.ErrorIs(err, domain.ErrArtistNotFound)
	s.Nil(resp)
}
