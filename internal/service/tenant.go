package service

import (
	"context"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

const (
	defaultMaxArtists = 5
	defaultMaxWorks   = 50
)

type TenantService struct {
	repo repository.Repository
}

func NewTenantService(repo repository.Repository) *TenantService {
	return &TenantService{repo: repo}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error) {
	tenant := &domain.Tenant{
		Name:       req.Name,
		MaxArtists: req.MaxArtists,
		MaxWorks:   req.MaxWorks,
		IsActive:   true,
	}
	if tenant.MaxArtists <= 0 {
		tenant.MaxArtists = defaultMaxArtists
	}
	if tenant.MaxWorks <= 0 {
		tenant.MaxWorks = defaultMaxWorks
	}

	createdTenant, err := s.repo.Tenant().Create(ctx, tenant)
	if err != nil {
		return nil, err
	}

	return dto.FromTenant(createdTenant), nil
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromTenant(tenant), nil
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromTenants(tenants), nil
}
