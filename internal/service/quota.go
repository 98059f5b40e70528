package service

import (
	"context"
	"errors"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

// Quota decision reasons
const (
	QuotaReasonTenantNotFound = "tenant_not_found"
	QuotaReasonTenantInactive = "tenant_inactive"
	QuotaReasonLimitReached   = "limit_reached"
)

// QuotaService answers whether a tenant may create one more resource of a
// given kind. The answer is advisory: creation re-checks the ceiling under
// a row lock, so a favorable answer here can still lose the race.
type QuotaService struct {
	repo repository.Repository
}

func NewQuotaService(repo repository.Repository) *QuotaService {
	return &QuotaService{repo: repo}
}

func (s *QuotaService) Check(ctx context.Context, tenantID, resource string) (*dto.QuotaResponse, error) {
	if !domain.IsValidResourceKind(resource) {
		return nil, ErrInvalidResourceKind
	}
	kind := domain.ResourceKind(resource)

	resp := &dto.QuotaResponse{
		TenantID: tenantID,
		Resource: resource,
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			resp.Reason = QuotaReasonTenantNotFound
			return resp, nil
		}
		return nil, err
	}

	resp.Limit = tenant.CeilingFor(kind)

	if !tenant.IsActive {
		resp.Reason = QuotaReasonTenantInactive
		return resp, nil
	}

	var count int64
	switch kind {
	case domain.ResourceArtists:
		count, err = s.repo.Artist().CountByTenant(ctx, tenantID)
	case domain.ResourceWorks:
		count, err = s.repo.Work().CountByTenant(ctx, tenantID)
	}
	if err != nil {
		return nil, err
	}

	resp.Current = count
	if count >= int64(resp.Limit) {
		resp.Reason = QuotaReasonLimitReached
		return resp, nil
	}

	resp.Allowed = true
	return resp, nil
}
