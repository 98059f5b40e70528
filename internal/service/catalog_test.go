package service

import (
	"context"
	"errors"
	"testing"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockArtist *mocks.ArtistRepository
	mockWork   *mocks.WorkRepository
	mockSearch *mocks.SearchRepository
	mockQueue  *mocks.QueueService
	service    *CatalogService
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockArtist = new(mocks.ArtistRepository)
	s.mockWork = new(mocks.WorkRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockQueue = new(mocks.QueueService)

	s.mockRepo.On("Artist").Return(s.mockArtist)
	s.mockRepo.On("Work").Return(s.mockWork)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewCatalogService(s.mockRepo, s.mockQueue)
}

func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) TestCreateArtist_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateArtistRequest{
		TenantID:  "tenant1",
		StageName: "Nova Atlas",
		LegalName: "Jordan Reyes",
	}

	expectedArtist := &domain.Artist{
		ID:        "artist1",
		TenantID:  "tenant1",
		StageName: "Nova Atlas",
		LegalName: "Jordan Reyes",
		IsActive:  true,
	}

	s.mockArtist.On("Create", ctx, mock.MatchedBy(func(a *domain.Artist) bool {
		return a.TenantID == "tenant1" && a.StageName == "Nova Atlas" && a.IsActive
	})).Return(expectedArtist, nil)

	// Act
	resp, err := s.service.CreateArtist(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("artist1", resp.ID)
	s.Equal("Nova Atlas", resp.StageName)
	s.mockArtist.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateArtist_QuotaExceeded() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateArtistRequest{TenantID: "tenant1", StageName: "Nova Atlas"}
	quotaErr := &domain.QuotaExceededError{Resource: domain.ResourceArtists, Limit: 5}

	s.mockArtist.On("Create", ctx, mock.AnythingOfType("*domain.Artist")).Return(nil, quotaErr)

	// Act
	resp, err := s.service.CreateArtist(ctx, req)

	// Assert
	s.Nil(resp)
	var qe *domain.QuotaExceededError
	s.ErrorAs(err, &qe)
	s.Equal(domain.ResourceArtists, qe.Resource)
	s.Equal(5, qe.Limit)
	s.mockArtist.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateWork_SendsIndexMessage() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateWorkRequest{
		TenantID:        "tenant1",
		ArtistID:        "artist1",
		Title:           "Midnight Transit",
		Genre:           "electronic",
		DurationSeconds: 212,
	}

	createdWork := &domain.Work{
		ID:                 "work1",
		TenantID:           "tenant1",
		ArtistID:           "artist1",
		Title:              "Midnight Transit",
		Genre:              "electronic",
		DurationSeconds:    212,
		DistributionStatus: domain.DistributionPending,
	}
	artist := &domain.Artist{ID: "artist1", TenantID: "tenant1", StageName: "Nova Atlas", IsActive: true}

	s.mockWork.On("Create", ctx, mock.AnythingOfType("*domain.Work")).Return(createdWork, nil)
	s.mockArtist.On("GetByID", ctx, "artist1").Return(artist, nil)
	s.mockQueue.On("SendIndexMessage", ctx, mock.MatchedBy(func(doc *domain.WorkDocument) bool {
		return doc.ID == "work1" && doc.ArtistName == "Nova Atlas"
	})).Return(nil)

	// Act
	resp, err := s.service.CreateWork(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("work1", resp.ID)
	s.Equal(string(domain.DistributionPending), resp.DistributionStatus)
	s.mockWork.AssertExpectations(s.T())
	s.mockQueue.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateWork_SucceedsWhenIndexingFails() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateWorkRequest{
		TenantID:        "tenant1",
		ArtistID:        "artist1",
		Title:           "Midnight Transit",
		DurationSeconds: 212,
	}

	createdWork := &domain.Work{ID: "work1", TenantID: "tenant1", ArtistID: "artist1", Title: "Midnight Transit"}
	artist := &domain.Artist{ID: "artist1", StageName: "Nova Atlas"}

	s.mockWork.On("Create", ctx, mock.AnythingOfType("*domain.Work")).Return(createdWork, nil)
	s.mockArtist.On("GetByID", ctx, "artist1").Return(artist, nil)
	s.mockQueue.On("SendIndexMessage", ctx, mock.AnythingOfType("*domain.WorkDocument")).Return(errors.New("sqs unavailable"))

	// Act
	resp, err := s.service.CreateWork(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("work1", resp.ID)
	s.mockQueue.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestCreateWork_ArtistTenantMismatch() {
	// Arrange
	ctx := context.Background()
	req := dto.CreateWorkRequest{
		TenantID:        "tenant1",
		ArtistID:        "artist2",
		Title:           "Midnight Transit",
		DurationSeconds: 212,
	}

	s.mockWork.On("Create", ctx, mock.AnythingOfType("*domain.Work")).Return(nil, domain.ErrArtistTenantMismatch)

	// Act
	resp, err := s.service.CreateWork(ctx, req)

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, domain.ErrArtistTenantMismatch)
	s.mockQueue.AssertNotCalled(s.T(), "SendIndexMessage", mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestSearchWorks_AppliesDefaultLimit() {
	// Arrange
	ctx := context.Background()
	filter := &domain.WorkSearchFilter{TenantID: "tenant1", Query: "midnight"}
	docs := []domain.WorkDocument{{ID: "work1", Title: "Midnight Transit"}}

	s.mockSearch.On("SearchWorks", ctx, mock.MatchedBy(func(f *domain.WorkSearchFilter) bool {
		return f.Limit == 20 && f.Offset == 0
	})).Return(docs, nil)

	// Act
	result, err := s.service.SearchWorks(ctx, filter)

	// Assert
	s.NoError(err)
	s.Len(result, 1)
	s.mockSearch.AssertExpectations(s.T())
}

func (s *CatalogServiceTestSuite) TestListWorksByArtist_Success() {
	// Arrange
	ctx := context.Background()
	works := []domain.Work{
		{ID: "work1", ArtistID: "artist1", Title: "Midnight Transit"},
		{ID: "work2", ArtistID: "artist1", Title: "Daybreak"},
	}

	s.mockWork.On("ListByArtist", ctx, "artist1").Return(works, nil)

	// Act
	resp, err := s.service.ListWorksByArtist(ctx, "artist1")

	// Assert
	s.NoError(err)
	s.Len(resp, 2)
	s.mockWork.AssertExpectations(s.T())
}
