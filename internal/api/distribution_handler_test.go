package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
)

type DistributionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockDistributionService
	handler     *DistributionHandler
}

type MockDistributionService struct {
	mock.Mock
}

func (m *MockDistributionService) RequestDistribution(ctx context.Context, workID string, req dto.DistributeWorkRequest) (*dto.DistributionResponse, error) {
	args := m.Called(ctx, workID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DistributionResponse), args.Error(1)
}

func (s *DistributionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockDistributionService)
	s.handler = NewDistributionHandler(s.mockService)

	// Setup routes
	s.router.POST("/works/:id/distribute", s.handler.DistributeWork)
}

func TestDistributionHandler(t *testing.T) {
	suite.Run(t, new(DistributionHandlerTestSuite))
}

func (s *DistributionHandlerTestSuite) TestDistributeWork_Accepted() {
	// Arrange
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify", "apple_music"}}
	expectedResponse := &dto.DistributionResponse{
		WorkID:             "work1",
		DistributionStatus: "processing",
		Platforms:          req.Platforms,
		Dispatched:         true,
	}

	s.mockService.On("RequestDistribution", mock.Anything, "work1", req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/works/work1/distribute", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusAccepted, w.Code)
	var response dto.DistributionResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal("processing", response.DistributionStatus)
	s.True(response.Dispatched)
	s.mockService.AssertExpectations(s.T())
}

func (s *DistributionHandlerTestSuite) TestDistributeWork_RepeatedRequestNotDispatched() {
	// Arrange
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify"}}
	expectedResponse := &dto.DistributionResponse{
		WorkID:             "work1",
		DistributionStatus: "processing",
		Platforms:          req.Platforms,
		Dispatched:         false,
	}

	s.mockService.On("RequestDistribution", mock.Anything, "work1", req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/works/work1/distribute", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusAccepted, w.Code)
	var response dto.DistributionResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.False(response.Dispatched)
	s.mockService.AssertExpectations(s.T())
}

func (s *DistributionHandlerTestSuite) TestDistributeWork_UnsupportedPlatform() {
	// Arrange
	req := dto.DistributeWorkRequest{Platforms: []string{"napster"}}
	platformErr := &domain.InvalidPlatformError{Platforms: []string{"napster"}}

	s.mockService.On("RequestDistribution", mock.Anything, "work1", req).Return(nil, platformErr)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/works/work1/distribute", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *DistributionHandlerTestSuite) TestDistributeWork_WorkNotFound() {
	// Arrange
	req := dto.DistributeWorkRequest{Platforms: []string{"spotify"}}

	s.mockService.On("RequestDistribution", mock.Anything, "missing", req).Return(nil, domain.ErrWorkNotFound)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/works/missing/distribute", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *DistributionHandlerTestSuite) TestDistributeWork_MissingPlatforms() {
	// Arrange
	body := []byte(`{}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/works/work1/distribute", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "RequestDistribution", mock.Anything, mock.Anything, mock.Anything)
}
