package service

import (
	"context"
	"testing"
	"time"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewTenantService(s.mockRepo)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name:       "Velvet Records",
		MaxArtists: 10,
		MaxWorks:   200,
	}

	expectedTenant := &domain.Tenant{
		ID:         "tenant1",
		Name:       req.Name,
		MaxArtists: 10,
		MaxWorks:   200,
		IsActive:   true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.Name == "Velvet Records" && t.MaxArtists == 10 && t.MaxWorks == 200 && t.IsActive
	})).Return(expectedTenant, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal(expectedTenant.ID, resp.ID)
	s.Equal(expectedTenant.Name, resp.Name)
	s.Equal(10, resp.MaxArtists)
	s.Equal(200, resp.MaxWorks)
	s.True(resp.IsActive)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestCreate_AppliesDefaultCeilings() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateTenantRequest{
		Name: "Velvet Records",
	}

	expectedTenant := &domain.Tenant{
		ID:         "tenant1",
		Name:       req.Name,
		MaxArtists: defaultMaxArtists,
		MaxWorks:   defaultMaxWorks,
		IsActive:   true,
	}

	s.mockTenant.On("Create", ctx, mock.MatchedBy(func(t *domain.Tenant) bool {
		return t.MaxArtists == defaultMaxArtists && t.MaxWorks == defaultMaxWorks
	})).Return(expectedTenant, nil)

	// Act
	resp, err := s.service.Create(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal(defaultMaxArtists, resp.MaxArtists)
	s.Equal(defaultMaxWorks, resp.MaxWorks)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestGetByID_Success() {
	// Arrange
	ctx := context.Background()
	tenantID := "tenant1"
	expectedTenant := &domain.Tenant{
		ID:         tenantID,
		Name:       "Velvet Records",
		MaxArtists: 5,
		MaxWorks:   50,
		IsActive:   true,
	}

	s.mockTenant.On("GetByID", ctx, tenantID).Return(expectedTenant, nil)

	// Act
	resp, err := s.service.GetByID(ctx, tenantID)

	// Assert
	s.NoError(err)
	s.Equal(tenantID, resp.ID)
	s.Equal("Velvet Records", resp.Name)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetByID", ctx, "missing").Return(nil, domain.ErrTenantNotFound)

	// Act
	resp, err := s.service.GetByID(ctx, "missing")

	// Assert
	s.ErrorIs(err, domain.ErrTenantNotFound)
	s.Nil(resp)
	s.mockTenant.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestList_Success() {
	// Arrange
	ctx := context.Background()
	tenants := []domain.Tenant{
		{ID: "tenant1", Name: "Velvet Records"},
		{ID: "tenant2", Name: "Northside Sounds"},
	}

	s.mockTenant.On("List", ctx).Return(tenants, nil)

	// Act
	resp, err := s.service.List(ctx)

	// Assert
	s.NoError(err)
	s.Len(resp, 2)
	s.Equal("tenant1", resp[0].ID)
	s.Equal("tenant2", resp[1].ID)
	s.mockTenant.AssertExpectations(s.T())
}
