package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/service"
	"github.com/labelgrid/royalty-engine/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// HandleError maps domain and service errors to HTTP status codes
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var quotaErr *domain.QuotaExceededError
	var splitErr *domain.SplitOverflowError
	var platformErr *domain.InvalidPlatformError
	var ownershipErr *domain.WorkNotOwnedError

	switch {
	case errors.Is(err, domain.ErrTenantNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrWorkNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})

	case errors.Is(err, domain.ErrTenantInactive):
		c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})

	case errors.As(err, &quotaErr),
		errors.As(err, &splitErr),
		errors.Is(err, domain.ErrDuplicateReportPeriod),
		errors.Is(err, domain.ErrTransactionConflict):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})

	case errors.As(err, &platformErr),
		errors.As(err, &ownershipErr),
		errors.Is(err, domain.ErrArtistInactive),
		errors.Is(err, domain.ErrMissingAudio),
		errors.Is(err, domain.ErrMissingArtwork),
		errors.Is(err, domain.ErrNoPlatforms),
		errors.Is(err, domain.ErrArtistTenantMismatch),
		errors.Is(err, service.ErrInvalidResourceKind),
		errors.Is(err, service.ErrInvalidRecipientType),
		errors.Is(err, service.ErrInvalidPercentage),
		errors.Is(err, service.ErrInvalidPlatform),
		errors.Is(err, service.ErrInvalidPeriodType),
		errors.Is(err, service.ErrInvalidPeriodRange),
		errors.Is(err, service.ErrNegativeEarnings):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
