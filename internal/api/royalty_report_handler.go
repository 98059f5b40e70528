package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/utils"
)

//go:generate mockery --name RoyaltyReportService --output ../mocks
type RoyaltyReportService interface {
	Ingest(ctx context.Context, req dto.IngestRoyaltyReportRequest) (*dto.RoyaltyReportResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RoyaltyReportResponse, error)
	List(ctx context.Context, tenantID string) ([]dto.RoyaltyReportResponse, error)
	ListEarnings(ctx context.Context, reportID string) ([]dto.WorkEarningsResponse, error)
}

type RoyaltyReportHandler struct {
	*BaseHandler
	service RoyaltyReportService
}

func NewRoyaltyReportHandler(service RoyaltyReportService) *RoyaltyReportHandler {
	return &RoyaltyReportHandler{service: service}
}

// IngestReport godoc
// @Summary Ingest a platform royalty report
// @Description Persist a report and its per-work earnings atomically; a second report for the same platform and period is rejected
// @Tags reports
// @Accept json
// @Produce json
// @Param body body dto.IngestRoyaltyReportRequest true "Royalty report payload"
// @Success 201 {object} dto.RoyaltyReportResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /reports [post]
func (h *RoyaltyReportHandler) IngestReport(c *gin.Context) {
	var req dto.IngestRoyaltyReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	report, err := h.service.Ingest(h.RequestCtx(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReport godoc
// @Summary Get a royalty report
// @Description Get a single ingested report by ID
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.RoyaltyReportResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /reports/{id} [get]
func (h *RoyaltyReportHandler) GetReport(c *gin.Context) {
	report, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListReports godoc
// @Summary List the authenticated tenant's royalty reports
// @Description Get all ingested reports for the tenant in the JWT, newest period first
// @Tags reports
// @Produce json
// @Success 200 {array} dto.RoyaltyReportResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /reports [get]
func (h *RoyaltyReportHandler) ListReports(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	reports, err := h.service.List(ctx, tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ListReportEarnings godoc
// @Summary List a report's per-work earnings
// @Description Get the earnings decomposition of an ingested report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {array} dto.WorkEarningsResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /reports/{id}/earnings [get]
func (h *RoyaltyReportHandler) ListReportEarnings(c *gin.Context) {
	earnings, err := h.service.ListEarnings(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, earnings)
}
