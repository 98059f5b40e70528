package api

import (
	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/middleware"
	"github.com/labelgrid/royalty-engine/internal/service"
	"github.com/labelgrid/royalty-engine/internal/service/pubsub"
	"github.com/labelgrid/royalty-engine/pkg/logger"
)

type Server struct {
	tenant       *TenantHandler
	catalog      *CatalogHandler
	split        *RoyaltySplitHandler
	distribution *DistributionHandler
	report       *RoyaltyReportHandler
	analytics    *AnalyticsHandler
	websocket    *WebSocketHandler
	auth         *middleware.AuthMiddleware
	rateLimit    *middleware.RateLimitMiddleware
	validation   *middleware.ValidationMiddleware
}

func NewServer(
	tenantService *service.TenantService,
	quotaService *service.QuotaService,
	catalogService *service.CatalogService,
	splitService *service.RoyaltySplitService,
	distributionService *service.DistributionService,
	reportService *service.RoyaltyReportService,
	analyticsService *service.AnalyticsService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		tenant:       NewTenantHandler(tenantService, quotaService),
		catalog:      NewCatalogHandler(catalogService),
		split:        NewRoyaltySplitHandler(splitService),
		distribution: NewDistributionHandler(distributionService),
		report:       NewRoyaltyReportHandler(reportService),
		analytics:    NewAnalyticsHandler(analyticsService),
		websocket:    NewWebSocketHandler(logger, pubsub),
		auth:         auth,
		rateLimit:    rateLimit,
		validation:   validation,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json", "text/plain"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		tenants := api.Group("/tenants", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			tenants.POST("", s.auth.RequireRole(string(domain.RoleSuperAdmin)), s.tenant.CreateTenant)
			tenants.GET("", s.auth.RequireRole(string(domain.RoleSuperAdmin)), s.tenant.ListTenants)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.GET("/:id/quota", s.tenant.CheckQuota)
		}

		artists := api.Group("/artists", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			artists.POST("", s.auth.RequireRole(string(domain.RoleLabelAdmin)), s.catalog.CreateArtist)
			artists.GET("", s.catalog.ListArtists)
			artists.GET("/:id", s.catalog.GetArtist)
			artists.GET("/:id/works", s.catalog.ListArtistWorks)
		}

		works := api.Group("/works", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			works.POST("", s.auth.RequireRole(string(domain.RoleLabelAdmin)), s.catalog.CreateWork)
			works.GET("", s.catalog.ListWorks)
			works.GET("/search", s.catalog.SearchWorks)
			works.GET("/:id", s.catalog.GetWork)
			works.POST("/:id/distribute", s.auth.RequireRole(string(domain.RoleLabelAdmin)), s.distribution.DistributeWork)
			works.POST("/:id/splits", s.auth.RequireRole(string(domain.RoleLabelAdmin)), s.split.AddSplit)
			works.GET("/:id/splits", s.split.ListSplits)
		}

		reports := api.Group("/reports", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			reports.POST("", s.auth.RequireRole(string(domain.RoleLabelAdmin)), s.report.IngestReport)
			reports.GET("", s.report.ListReports)
			reports.GET("/stream", s.websocket.HandleWebSocket)
			reports.GET("/:id", s.report.GetReport)
			reports.GET("/:id/earnings", s.report.ListReportEarnings)
		}

		analytics := api.Group("/analytics", s.auth.JWTAuth(), s.rateLimit.TenantRateLimit())
		{
			analytics.GET("/tenants/:id", s.analytics.GetTenantAnalytics)
			analytics.GET("/artists/:id", s.analytics.GetArtistAnalytics)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting reports
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
