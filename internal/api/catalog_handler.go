package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/utils"
)

//go:generate mockery --name CatalogService --output ../mocks
type CatalogService interface {
	CreateArtist(ctx context.Context, req dto.CreateArtistRequest) (*dto.ArtistResponse, error)
	GetArtist(ctx context.Context, id string) (*dto.ArtistResponse, error)
	ListArtists(ctx context.Context, tenantID string) ([]dto.ArtistResponse, error)
	CreateWork(ctx context.Context, req dto.CreateWorkRequest) (*dto.WorkResponse, error)
	GetWork(ctx context.Context, id string) (*dto.WorkResponse, error)
	ListWorks(ctx context.Context, tenantID string) ([]dto.WorkResponse, error)
	ListWorksByArtist(ctx context.Context, artistID string) ([]dto.WorkResponse, error)
	SearchWorks(ctx context.Context, filter *domain.WorkSearchFilter) ([]domain.WorkDocument, error)
}

type CatalogHandler struct {
	*BaseHandler
	service CatalogService
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateArtist godoc
// @Summary Create a new artist
// @Description Create an artist under a tenant, subject to the tenant's artist ceiling
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body dto.CreateArtistRequest true "Artist object"
// @Success 201 {object} dto.ArtistResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /artists [post]
func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	artist, err := h.service.CreateArtist(h.RequestCtx(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// GetArtist godoc
// @Summary Get an artist
// @Description Get a single artist by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} dto.ArtistResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /artists/{id} [get]
func (h *CatalogHandler) GetArtist(c *gin.Context) {
	artist, err := h.service.GetArtist(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, artist)
}

// ListArtists godoc
// @Summary List the authenticated tenant's artists
// @Description Get all artists belonging to the tenant in the JWT
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ArtistResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /artists [get]
func (h *CatalogHandler) ListArtists(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	artists, err := h.service.ListArtists(ctx, tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, artists)
}

// ListArtistWorks godoc
// @Summary List an artist's works
// @Description Get all works belonging to the given artist
// @Tags catalog
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {array} dto.WorkResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /artists/{id}/works [get]
func (h *CatalogHandler) ListArtistWorks(c *gin.Context) {
	works, err := h.service.ListWorksByArtist(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// CreateWork godoc
// @Summary Create a new work
// @Description Create a musical work under a tenant, subject to the tenant's work ceiling
// @Tags catalog
// @Accept json
// @Produce json
// @Param body body dto.CreateWorkRequest true "Work object"
// @Success 201 {object} dto.WorkResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works [post]
func (h *CatalogHandler) CreateWork(c *gin.Context) {
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	work, err := h.service.CreateWork(h.RequestCtx(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, work)
}

// GetWork godoc
// @Summary Get a work
// @Description Get a single work by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Work ID"
// @Success 200 {object} dto.WorkResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works/{id} [get]
func (h *CatalogHandler) GetWork(c *gin.Context) {
	work, err := h.service.GetWork(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, work)
}

// ListWorks godoc
// @Summary List the authenticated tenant's works
// @Description Get all works belonging to the tenant in the JWT
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.WorkResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works [get]
func (h *CatalogHandler) ListWorks(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	works, err := h.service.ListWorks(ctx, tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, works)
}

// SearchWorks godoc
// @Summary Search the work catalog
// @Description Full-text search over the tenant's indexed works
// @Tags catalog
// @Produce json
// @Param q query string false "Search query matched against title and artist name"
// @Param genre query string false "Genre filter"
// @Param status query string false "Distribution status filter"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.WorkDocument
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /works/search [get]
func (h *CatalogHandler) SearchWorks(c *gin.Context) {
	ctx := h.RequestCtx(c)
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	filter := &domain.WorkSearchFilter{
		TenantID: tenantID,
		Query:    c.Query("q"),
		Genre:    c.Query("genre"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	}

	docs, err := h.service.SearchWorks(ctx, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
