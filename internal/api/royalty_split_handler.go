package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
)

//go:generate mockery --name RoyaltySplitService --output ../mocks
type RoyaltySplitService interface {
	AddSplit(ctx context.Context, workID string, req dto.CreateRoyaltySplitRequest) (*dto.RoyaltySplitResponse, error)
	ListSplits(ctx context.Context, workID string) (*dto.SplitLedgerResponse, error)
}

type RoyaltySplitHandler struct {
	*BaseHandler
	service RoyaltySplitService
}

func NewRoyaltySplitHandler(service RoyaltySplitService) *RoyaltySplitHandler {
	return &RoyaltySplitHandler{service: service}
}

// AddSplit godoc
// @Summary Add a royalty split to a work
// @Description Append a percentage claim to the work's split ledger; the ledger total can never exceed 100%
// @Tags splits
// @Accept json
// @Produce json
// @Param id path string true "Work ID"
// @Param body body dto.CreateRoyaltySplitRequest true "Split object"
// @Success 201 {object} dto.RoyaltySplitResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works/{id}/splits [post]
func (h *RoyaltySplitHandler) AddSplit(c *gin.Context) {
	var req dto.CreateRoyaltySplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	split, err := h.service.AddSplit(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, split)
}

// ListSplits godoc
// @Summary List a work's royalty splits
// @Description Get the work's full split ledger with its running percentage total
// @Tags splits
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} dto.SplitLedgerResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works/{id}/splits [get]
func (h *RoyaltySplitHandler) ListSplits(c *gin.Context) {
	ledger, err := h.service.ListSplits(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledger)
}
