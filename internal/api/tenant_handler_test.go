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
	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/service"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockService  *MockTenantService
	mockQuotaSvc *MockQuotaService
	handler      *TenantHandler
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TenantResponse), args.Error(1)
}

func (m *MockTenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TenantResponse), args.Error(1)
}

type MockQuotaService struct {
	mock.Mock
}

func (m *MockQuotaService) Check(ctx context.Context, tenantID, resource string) (*dto.QuotaResponse, error) {
	args := m.Called(ctx, tenantID, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuotaResponse), args.Error(1)
}

func (s *TenantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockTenantService)
	s.mockQuotaSvc = new(MockQuotaService)
	s.handler = NewTenantHandler(s.mockService, s.mockQuotaSvc)

	// Setup routes
	s.router.POST("/tenants", s.handler.CreateTenant)
	s.router.GET("/tenants", s.handler.ListTenants)
	s.router.GET("/tenants/:id", s.handler.GetTenant)
	s.router.GET("/tenants/:id/quota", s.handler.CheckQuota)
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

func (s *TenantHandlerTestSuite) TestCreateTenant_Success() {
	// Arrange
	now := time.Now()
	req := dto.CreateTenantRequest{
		Name:       "Velvet Records",
		MaxArtists: 5,
		MaxWorks:   50,
	}

	expectedResponse := &dto.TenantResponse{
		ID:         "tenant1",
		Name:       req.Name,
		MaxArtists: 5,
		MaxWorks:   50,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	s.mockService.On("Create", mock.Anything, req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenants", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TenantResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expectedResponse.ID, response.ID)
	s.Equal(expectedResponse.Name, response.Name)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCreateTenant_MissingName() {
	// Arrange
	body := []byte(`{"max_artists": 5}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/tenants", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantHandlerTestSuite) TestGetTenant_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrTenantNotFound)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/tenants/missing", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestListTenants_Success() {
	// Arrange
	expectedTenants := []dto.TenantResponse{
		{ID: "tenant1", Name: "Velvet Records"},
		{ID: "tenant2", Name: "Northside Sounds"},
	}

	s.mockService.On("List", mock.Anything).Return(expectedTenants, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/tenants", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.TenantResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.mockService.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCheckQuota_LimitReached() {
	// Arrange
	decision := &dto.QuotaResponse{
		TenantID: "tenant1",
		Resource: "artists",
		Allowed:  false,
		Current:  5,
		Limit:    5,
		Reason:   "limit_reached",
	}

	s.mockQuotaSvc.On("Check", mock.Anything, "tenant1", "artists").Return(decision, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/tenants/tenant1/quota?resource=artists", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.QuotaResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.False(response.Allowed)
	s.Equal("limit_reached", response.Reason)
	s.mockQuotaSvc.AssertExpectations(s.T())
}

func (s *TenantHandlerTestSuite) TestCheckQuota_InvalidResource() {
	// Arrange
	s.mockQuotaSvc.On("Check", mock.Anything, "tenant1", "albums").Return(nil, service.ErrInvalidResourceKind)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/tenants/tenant1/quota?resource=albums", nil)

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockQuotaSvc.AssertExpectations(s.T())
}
