package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
)

type RoyaltyReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockRoyaltyReportService
	handler     *RoyaltyReportHandler
}

type MockRoyaltyReportService struct {
	mock.Mock
}

func (m *MockRoyaltyReportService) Ingest(ctx context.Context, req dto.IngestRoyaltyReportRequest) (*dto.RoyaltyReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RoyaltyReportResponse), args.Error(1)
}

func (m *MockRoyaltyReportService) GetByID(ctx context.Context, id string) (*dto.RoyaltyReportResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RoyaltyReportResponse), args.Error(1)
}

func (m *MockRoyaltyReportService) List(ctx context.Context, tenantID string) ([]dto.RoyaltyReportResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RoyaltyReportResponse), args.Error(1)
}

func (m *MockRoyaltyReportService) ListEarnings(ctx context.Context, reportID string) ([]dto.WorkEarningsResponse, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.WorkEarningsResponse), args.Error(1)
}

func (s *RoyaltyReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockRoyaltyReportService)
	s.handler = NewRoyaltyReportHandler(s.mockService)

	// Setup routes
	s.router.POST("/reports", s.handler.IngestReport)
	s.router.GET("/reports/:id", s.handler.GetReport)
	s.router.GET("/reports/:id/earnings", s.handler.ListReportEarnings)
}

func TestRoyaltyReportHandler(t *testing.T) {
	suite.Run(t, new(RoyaltyReportHandlerTestSuite))
}

func (s *RoyaltyReportHandlerTestSuite) ingestRequest() dto.IngestRoyaltyReportRequest {
	return dto.IngestRoyaltyReportRequest{
		TenantID:    "tenant1",
		Platform:    "spotify",
		PeriodType:  "monthly",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-30",
		Earnings: []dto.WorkEarningEntry{
			{WorkID: "work1", Streams: 700, Revenue: decimal.RequireFromString("2.50")},
			{WorkID: "work2", Streams: 300, Revenue: decimal.RequireFromString("7.50")},
		},
	}
}

// matchIngestRequest compares decimals by value. Deep equality on the
// request struct distinguishes representations of the same amount, so an
// equal revenue decoded from the wire would not match.
func matchIngestRequest(want dto.IngestRoyaltyReportRequest) interface{} {
	return mock.MatchedBy(func(got dto.IngestRoyaltyReportRequest) bool {
		if got.TenantID != want.TenantID ||
			got.Platform != want.Platform ||
			got.PeriodType != want.PeriodType ||
			got.PeriodStart != want.PeriodStart ||
			got.PeriodEnd != want.PeriodEnd ||
			len(got.Earnings) != len(want.Earnings) {
			return false
		}
		for i := range want.Earnings {
			if got.Earnings[i].WorkID != want.Earnings[i].WorkID ||
				got.Earnings[i].Streams != want.Earnings[i].Streams ||
				!got.Earnings[i].Revenue.Equal(want.Earnings[i].Revenue) {
				return false
			}
		}
		return true
	})
}

func (s *RoyaltyReportHandlerTestSuite) TestIngestReport_Success() {
	// Arrange
	req := s.ingestRequest()
	expectedResponse := &dto.RoyaltyReportResponse{
		ID:           "report1",
		TenantID:     "tenant1",
		Platform:     "spotify",
		PeriodType:   "monthly",
		PeriodStart:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TotalStreams: 1000,
		TotalRevenue: decimal.NewFromInt(10),
	}

	s.mockService.On("Ingest", mock.Anything, matchIngestRequest(req)).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.RoyaltyReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal("report1", response.ID)
	s.Equal(int64(1000), response.TotalStreams)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoyaltyReportHandlerTestSuite) TestIngestReport_DuplicatePeriod() {
	// Arrange
	req := s.ingestRequest()
	s.mockService.On("Ingest", mock.Anything, matchIngestRequest(req)).Return(nil, domain.ErrDuplicateReportPeriod)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoyaltyReportHandlerTestSuite) TestIngestReport_WorkNotOwned() {
	// Arrange
	req := s.ingestRequest()
	ownErr := &domain.WorkNotOwnedError{WorkID: "work2", TenantID: "tenant1"}
	s.mockService.On("Ingest", mock.Anything, matchIngestRequest(req)).Return(nil, ownErr)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoyaltyReportHandlerTestSuite) TestIngestReport_EmptyEarnings() {
	// Arrange
	req := s.ingestRequest()
	req.Earnings = nil
	expectedResponse := &dto.RoyaltyReportResponse{
		ID:           "report1",
		TenantID:     "tenant1",
		Platform:     "spotify",
		TotalStreams: 0,
		TotalRevenue: decimal.Zero,
	}

	s.mockService.On("Ingest", mock.Anything, matchIngestRequest(req)).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.RoyaltyReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(int64(0), response.TotalStreams)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoyaltyReportHandlerTestSuite) TestIngestReport_MissingFields() {
	// Arrange
	body := []byte(`{"tenant_id": "tenant1"}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/reports", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Ingest", mock.Anything, mock.Anything)
}

func (s *RoyaltyReportHandlerTestSuite) TestGetReport_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrReportNotFound)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/reports/missing", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoyaltyReportHandlerTestSuite) TestListReportEarnings_Success() {
	// Arrange
	earnings := []dto.WorkEarningsResponse{
		{ID: "earning1", WorkID: "work1", Platform: "spotify", Streams: 700, Revenue: decimal.RequireFromString("2.50")},
		{ID: "earning2", WorkID: "work2", Platform: "spotify", Streams: 300, Revenue: decimal.RequireFromString("7.50")},
	}

	s.mockService.On("ListEarnings", mock.Anything, "report1").Return(earnings, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/reports/report1/earnings", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.WorkEarningsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.mockService.AssertExpectations(s.T())
}
