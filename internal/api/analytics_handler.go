package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
)

//go:generate mockery --name AnalyticsService --output ../mocks
type AnalyticsService interface {
	GetTenantAnalytics(ctx context.Context, tenantID string) (*dto.TenantAnalyticsResponse, error)
	GetArtistAnalytics(ctx context.Context, artistID string) (*dto.ArtistAnalyticsResponse, error)
}

type AnalyticsHandler struct {
	*BaseHandler
	service AnalyticsService
}

func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetTenantAnalytics godoc
// @Summary Get label-level analytics
// @Description Compute the tenant's totals, month-over-month growth and top performing works from the earnings ledger
// @Tags analytics
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantAnalyticsResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/tenants/{id} [get]
func (h *AnalyticsHandler) GetTenantAnalytics(c *gin.Context) {
	analytics, err := h.service.GetTenantAnalytics(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetArtistAnalytics godoc
// @Summary Get artist-level analytics
// @Description Compute the artist's totals, monthly earnings series and platform breakdown
// @Tags analytics
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} dto.ArtistAnalyticsResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /analytics/artists/{id} [get]
func (h *AnalyticsHandler) GetArtistAnalytics(c *gin.Context) {
	analytics, err := h.service.GetArtistAnalytics(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
