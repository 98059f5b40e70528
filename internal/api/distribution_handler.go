package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
)

//go:generate mockery --name DistributionService --output ../mocks
type DistributionService interface {
	RequestDistribution(ctx context.Context, workID string, req dto.DistributeWorkRequest) (*dto.DistributionResponse, error)
}

type DistributionHandler struct {
	*BaseHandler
	service DistributionService
}

func NewDistributionHandler(service DistributionService) *DistributionHandler {
	return &DistributionHandler{service: service}
}

// DistributeWork godoc
// @Summary Request distribution of a work
// @Description Move a work into processing and trigger delivery to the requested platforms; a work already processing is not dispatched again
// @Tags distribution
// @Accept json
// @Produce json
// @Param id path string true "Work ID"
// @Param body body dto.DistributeWorkRequest true "Target platforms"
// @Success 202 {object} dto.DistributionResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works/{id}/distribute [post]
func (h *DistributionHandler) DistributeWork(c *gin.Context) {
	var req dto.DistributeWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.RequestDistribution(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}
