package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/labelgrid/royalty-engine/internal/api"
	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/mocks"
	"github.com/labelgrid/royalty-engine/internal/utils"
	"github.com/labelgrid/royalty-engine/pkg/logger"
)

func tenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(utils.TenantIDKey), "test-tenant-id")
		c.Set(string(utils.ClaimsKey), jwt.MapClaims{
			"user_id":   "test-user",
			"tenant_id": "test-tenant-id",
			"roles":     []interface{}{"label_admin"},
		})
		c.Next()
	}
}

func ingestPayload() dto.IngestRoyaltyReportRequest {
	return dto.IngestRoyaltyReportRequest{
		TenantID:    "test-tenant-id",
		Platform:    "spotify",
		PeriodType:  "monthly",
		PeriodStart: "2025-06-01",
		PeriodEnd:   "2025-06-30",
		Earnings: []dto.WorkEarningEntry{
			{WorkID: "work-1", Streams: 150000, Revenue: decimal.RequireFromString("423.17")},
			{WorkID: "work-2", Streams: 125000, Revenue: decimal.RequireFromString("376.83")},
		},
	}
}

func BenchmarkIngestReport(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.RoyaltyReportService)
	handler := api.NewRoyaltyReportHandler(mockService)
	logger.NewLogger("test")

	router := gin.New()
	router.Use(tenantContext())
	router.POST("/reports", handler.IngestReport)

	// Mock service response
	mockService.On("Ingest", mock.Anything, mock.AnythingOfType("dto.IngestRoyaltyReportRequest")).
		Return(&dto.RoyaltyReportResponse{ID: "report-1", TenantID: "test-tenant-id"}, nil)

	payloadBytes, _ := json.Marshal(ingestPayload())

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/reports", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkSearchWorks(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.CatalogService)
	handler := api.NewCatalogHandler(mockService)

	router := gin.New()
	router.Use(tenantContext())
	router.GET("/works/search", handler.SearchWorks)

	// Mock response
	mockDocs := make([]domain.WorkDocument, 100)
	for i := 0; i < 100; i++ {
		mockDocs[i] = domain.WorkDocument{
			ID:         fmt.Sprintf("work-%d", i),
			TenantID:   "test-tenant-id",
			ArtistName: "Nova Atlas",
			Title:      fmt.Sprintf("Track %d", i),
			Genre:      "electronic",
			CreatedAt:  time.Now(),
		}
	}

	mockService.On("SearchWorks", mock.Anything, mock.AnythingOfType("*domain.WorkSearchFilter")).
		Return(mockDocs, nil)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/works/search?q=midnight&genre=electronic&limit=20", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyIngest tests report ingestion under high concurrent load
func TestHighConcurrencyIngest(t *testing.T) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.RoyaltyReportService)
	handler := api.NewRoyaltyReportHandler(mockService)

	router := gin.New()
	router.Use(tenantContext())
	router.POST("/reports", handler.IngestReport)

	// Mock service response with some latency simulation
	mockService.On("Ingest", mock.Anything, mock.AnythingOfType("dto.IngestRoyaltyReportRequest")).
		Return(&dto.RoyaltyReportResponse{ID: "report-1", TenantID: "test-tenant-id"}, nil).
		Run(func(args mock.Arguments) {
			time.Sleep(1 * time.Millisecond) // Simulate some processing time
		})

	// Test parameters
	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	payloadBytes, _ := json.Marshal(ingestPayload())

	// Metrics
	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	// Launch concurrent requests
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("POST", "/reports", bytes.NewBuffer(payloadBytes))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	// Calculate metrics
	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	// Assertions and reporting
	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, throughput >= 1000, "Should handle at least 1000 requests/second, got %.2f", throughput)
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}

// TestMemoryUsageUnderLoad tests memory usage under sustained load
func TestMemoryUsageUnderLoad(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.RoyaltyReportService)
	handler := api.NewRoyaltyReportHandler(mockService)

	router := gin.New()
	router.Use(tenantContext())
	router.POST("/reports", handler.IngestReport)
	router.GET("/reports", handler.ListReports)

	mockService.On("Ingest", mock.Anything, mock.AnythingOfType("dto.IngestRoyaltyReportRequest")).
		Return(&dto.RoyaltyReportResponse{ID: "report-1", TenantID: "test-tenant-id"}, nil)
	mockService.On("List", mock.Anything, "test-tenant-id").Return([]dto.RoyaltyReportResponse{}, nil)

	// Run sustained load for 10 seconds
	duration := 10 * time.Second
	startTime := time.Now()
	requestCount := 0

	for time.Since(startTime) < duration {
		payload := ingestPayload()
		payload.Earnings[0].WorkID = fmt.Sprintf("work-%d", requestCount)

		payloadBytes, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", "/reports", bytes.NewBuffer(payloadBytes))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if requestCount%100 == 0 {
			// Occasionally do a list request
			req, _ := http.NewRequest("GET", "/reports", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}

		requestCount++
	}

	totalTime := time.Since(startTime)
	throughput := float64(requestCount) / totalTime.Seconds()

	t.Logf("=== Sustained Load Test Results ===")
	t.Logf("Duration: %v", duration)
	t.Logf("Total requests: %d", requestCount)
	t.Logf("Average throughput: %.2f requests/second", throughput)

	assert.True(t, throughput >= 500, "Should maintain at least 500 requests/second under sustained load")
}
