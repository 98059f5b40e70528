package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TenantResponse, error)
	List(ctx context.Context) ([]dto.TenantResponse, error)
}

//go:generate mockery --name QuotaService --output ../mocks
type QuotaService interface {
	Check(ctx context.Context, tenantID, resource string) (*dto.QuotaResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service  TenantService
	quotaSvc QuotaService
}

func NewTenantHandler(service TenantService, quotaSvc QuotaService) *TenantHandler {
	return &TenantHandler{service: service, quotaSvc: quotaSvc}
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Create a new label tenant with artist and work ceilings
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant godoc
// @Summary Get a tenant
// @Description Get a single tenant by ID
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants godoc
// @Summary List all tenants
// @Description Get a list of all label tenants
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// CheckQuota godoc
// @Summary Check a tenant's creation quota
// @Description Report whether the tenant may create one more resource of the given kind
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Param resource query string true "Resource kind (artists or works)"
// @Success 200 {object} dto.QuotaResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{id}/quota [get]
func (h *TenantHandler) CheckQuota(c *gin.Context) {
	decision, err := h.quotaSvc.Check(h.RequestCtx(c), c.Param("id"), c.Query("resource"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
