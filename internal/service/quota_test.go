package service

import (
	"context"
	"testing"

	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
	"github.com/stretchr/testify/suite"
)

type QuotaServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockArtist *mocks.ArtistRepository
	mockWork   *mocks.WorkRepository
	service    *QuotaService
}

func (s *QuotaServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockArtist = new(mocks.ArtistRepository)
	s.mockWork = new(mocks.WorkRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Artist").Return(s.mockArtist)
	s.mockRepo.On("Work").Return(s.mockWork)

	s.service = NewQuotaService(s.mockRepo)
}

func TestQuotaService(t *testing.T) {
	suite.Run(t, new(QuotaServiceTestSuite))
}

func (s *QuotaServiceTestSuite) TestCheck_InvalidResourceKind() {
	// Act
	resp, err := s.service.Check(context.Background(), "tenant1", "albums")

	// Assert
	s.ErrorIs(err, ErrInvalidResourceKind)
	s.Nil(resp)
}

func (s *QuotaServiceTestSuite) TestCheck_TenantNotFound() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, domain.ErrTenantNotFound)

	// Act
	resp, err := s.service.Check(ctx, "missing", "artists")

	// Assert
	s.NoError(err)
	s.False(resp.Allowed)
	s.Equal(QuotaReasonTenantNotFound, resp.Reason)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *QuotaServiceTestSuite) TestCheck_TenantInactive() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", MaxArtists: 5, MaxWorks: 50, IsActive: false}
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)

	// Act
	resp, err := s.service.Check(ctx, "tenant1", "artists")

	// Assert
	s.NoError(err)
	s.False(resp.Allowed)
	s.Equal(QuotaReasonTenantInactive, resp.Reason)
	s.Equal(5, resp.Limit)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *QuotaServiceTestSuite) TestCheck_ArtistLimitReached() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", MaxArtists: 5, MaxWorks: 50, IsActive: true}
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockArtist.On("CountByTenant", ctx, "tenant1").Return(int64(5), nil)

	// Act
	resp, err := s.service.Check(ctx, "tenant1", "artists")

	// Assert
	s.NoError(err)
	s.False(resp.Allowed)
	s.Equal(QuotaReasonLimitReached, resp.Reason)
	s.Equal(int64(5), resp.Current)
	s.Equal(5, resp.Limit)
	s.mockArtist.AssertExpectations(s.T())
}

func (s *QuotaServiceTestSuite) TestCheck_WorksAllowed() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", MaxArtists: 5, MaxWorks: 50, IsActive: true}
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(tenant, nil)
	s.mockWork.On("CountByTenant", ctx, "tenant1").Return(int64(10), nil)

	// Act
	resp, err := s.service.Check(ctx, "tenant1", "works")

	// Assert
	s.NoError(err)
	s.True(resp.Allowed)
	s.Empty(resp.Reason)
	s.Equal(int64(10), resp.Current)
	s.Equal(50, resp.Limit)
	s.mockWork.AssertExpectations(s.T())
}
