package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

type WorkRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewWorkRepository(writerDB, readerDB *gorm.DB) *WorkRepository {
	return &WorkRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the work under the same tenant row lock as artist
// creation, so the work ceiling cannot be overshot by concurrent
// requests. The owning artist must belong to the same tenant.
func (r *WorkRepository) Create(ctx context.Context, work *domain.Work) (*domain.Work, error) {
	if work.ID == "" {
		work.ID = uuid.New().String()
	}
	if work.DistributionStatus == "" {
		work.DistributionStatus = domain.DistributionPending
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant domain.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "id = ?", work.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTenantNotFound
			}
			return err
		}

		if !tenant.IsActive {
			return domain.ErrTenantInactive
		}

		var artist domain.Artist
		if err := tx.First(&artist, "id = ?", work.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrArtistNotFound
			}
			return err
		}
		if artist.TenantID != work.TenantID {
			return domain.ErrArtistTenantMismatch
		}

		var count int64
		if err := tx.Model(&domain.Work{}).
			Where("tenant_id = ?", work.TenantID).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(tenant.MaxWorks) {
			return &domain.QuotaExceededError{
				Resource: domain.ResourceWorks,
				Limit:    tenant.MaxWorks,
			}
		}

		return tx.Create(work).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return work, nil
}

func (r *WorkRepository) GetByID(ctx context.Context, id string) (*domain.Work, error) {
	var work domain.Work
	if err := r.readerDB.WithContext(ctx).First(&work, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkNotFound
		}
		return nil, err
	}
	return &work, nil
}

func (r *WorkRepository) GetWithArtist(ctx context.Context, id string) (*domain.Work, error) {
	var work domain.Work
	if err := r.readerDB.WithContext(ctx).
		Preload("Artist").
		First(&work, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkNotFound
		}
		return nil, err
	}
	return &work, nil
}

func (r *WorkRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Work, error) {
	var works []domain.Work
	if err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (r *WorkRepository) ListByArtist(ctx context.Context, artistID string) ([]domain.Work, error) {
	var works []domain.Work
	if err := r.readerDB.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("created_at ASC").
		Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (r *WorkRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	if err := r.readerDB.WithContext(ctx).Model(&domain.Work{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WorkRepository) CountByArtist(ctx context.Context, artistID string) (int64, error) {
	var count int64
	if err := r.readerDB.WithContext(ctx).Model(&domain.Work{}).
		Where("artist_id = ?", artistID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// MarkProcessing moves a work into the processing state with a single
// conditional UPDATE. Returns false when the work is already processing,
// which makes a repeated distribution request a no-op.
func (r *WorkRepository) MarkProcessing(ctx context.Context, id string) (bool, error) {
	result := r.writerDB.WithContext(ctx).Model(&domain.Work{}).
		Where("id = ? AND distribution_status <> ?", id, domain.DistributionProcessing).
		Update("distribution_status", domain.DistributionProcessing)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ResolveDistribution finishes a delivery attempt. Only works currently
// in processing can move to live or failed; stale resolutions report
// false instead of clobbering a newer state.
func (r *WorkRepository) ResolveDistribution(ctx context.Context, id string, status domain.DistributionStatus) (bool, error) {
	result := r.writerDB.WithContext(ctx).Model(&domain.Work{}).
		Where("id = ? AND distribution_status = ?", id, domain.DistributionProcessing).
		Update("distribution_status", status)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
