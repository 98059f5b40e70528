package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
)

type DistributionServiceTestSuite struct {
	suite.Suite
	mockRepo  *mocks.Repository
	mockWork  *mocks.WorkRepository
	mockQueue *mocks.QueueService
	service   *DistributionService
}

func (s *DistributionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockWork = new(mocks.WorkRepository)
	s.mockQueue = new(mocks.QueueService)

	s.mockRepo.On("Work").Return(s.mockWork)

	s.service = NewDistributionService(s.mockRepo, s.mockQueue)
}

func TestDistributionService(t *testing.T) {
	suite.Run(t, new(DistributionServiceTestSuite))
}

func (s *DistributionServiceTestSuite) readyWork() *domain.Work {
	return &domain.Work{
		ID:                 "work1",
		TenantID:           "tenant1",
		ArtistID:           "artist1",
		Title:              "Midnight Transit",
		AudioURL:           "https://cdn.example.com/audio/midnight-transit.wav",
		ArtworkURL:         "https://cdn.example.com/art/midnight-transit.jpg",
		DistributionStatus: domain.DistributionPending,
		Artist:             &domain.Artist{ID: "artist1", StageName: "Nova Atlas", IsActive: true},
	}
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify", "apple_music"}}

	s.mockWork.On("GetWithArtist", ctx, "work1").Return(s.readyWork(), nil)
	s.mockWork.On("MarkProcessing", ctx, "work1").Return(true, nil)
	s.mockQueue.On("SendDispatchMessage", ctx, mock.MatchedBy(func(doc *domain.WorkDocument) bool {
		return doc.ID == "work1" && doc.ArtistName == "Nova Atlas"
	}), []string{"spotify", "apple_music"}).Return(nil)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "work1", req)

	// Assert
	s.NoError(err)
	s.Equal("work1", resp.WorkID)
	s.Equal(string(domain.DistributionProcessing), resp.DistributionStatus)
	s.True(resp.Dispatched)
	s.mockWork.AssertExpectations(s.T())
	s.mockQueue.AssertExpectations(s.T())
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_AlreadyProcessing() {
	// Arrange
	ctx := context.Background()
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify"}}

	s.mockWork.On("GetWithArtist", ctx, "work1").Return(s.readyWork(), nil)
	s.mockWork.On("MarkProcessing", ctx, "work1").Return(false, nil)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "work1", req)

	// Assert
	s.NoError(err)
	s.False(resp.Dispatched)
	s.Equal(string(domain.DistributionProcessing), resp.DistributionStatus)
	s.mockQueue.AssertNotCalled(s.T(), "SendDispatchMessage", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_NoPlatforms() {
	// Act
	resp, err := s.service.RequestDistribution(context.Background(), "work1", dto.DistributeWorkRequest{})

	// Assert
	s.ErrorIs(err, domain.ErrNoPlatforms)
	s.Nil(resp)
	s.mockWork.AssertNotCalled(s.T(), "GetWithArtist", mock.Anything, mock.Anything)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_UnsupportedPlatform() {
	// Arrange
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify", "napster"}}

	// Act
	resp, err := s.service.RequestDistribution(context.Background(), "work1", req)

	// Assert
	s.Nil(resp)
	var pe *domain.InvalidPlatformError
	s.ErrorAs(err, &pe)
	s.Equal([]string{"napster"}, pe.Platforms)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_WorkNotFound() {
	// Arrange
	ctx := context.Background()
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify"}}
	s.mockWork.On("GetWithArtist", ctx, "missing").Return(nil, domain.ErrWorkNotFound)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "missing", req)

	// Assert
	s.ErrorIs(err, domain.ErrWorkNotFound)
	s.Nil(resp)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_MissingAudio() {
	// Arrange
	ctx := context.Background()
	work := s.readyWork()
	work.AudioURL = ""
	s.mockWork.On("GetWithArtist", ctx, "work1").Return(work, nil)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "work1", dto.DistributeWorkRequest{Platforms: []string{"spotify"}})

	// Assert
	s.ErrorIs(err, domain.ErrMissingAudio)
	s.Nil(resp)
	s.mockWork.AssertNotCalled(s.T(), "MarkProcessing", mock.Anything, mock.Anything)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_MissingArtwork() {
	// Arrange
	ctx := context.Background()
	work := s.readyWork()
	work.ArtworkURL = ""
	s.mockWork.On("GetWithArtist", ctx, "work1").Return(work, nil)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "work1", dto.DistributeWorkRequest{Platforms: []string{"spotify"}})

	// Assert
	s.ErrorIs(err, domain.ErrMissingArtwork)
	s.Nil(resp)
}

func (s *DistributionServiceTestSuite) TestRequestDistribution_InactiveArtist() {
	// Arrange
	ctx := context.Background()
	work := s.readyWork()
	work.Artist.IsActive = false
	s.mockWork.On("GetWithArtist", ctx, "work1").Return(work, nil)

	// Act
	resp, err := s.service.RequestDistribution(ctx, "work1", dto.DistributeWorkRequest{Platforms: []string{"spotify"}})

	// Assert
	s.ErrorIs(err, domain.ErrArtistInactive)
	s.Nil(resp)
	s.mockWork.AssertNotCalled(s.T(), "MarkProcessing", mock.Anything, mock.Anything)
}
