package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

type ArtistRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewArtistRepository(writerDB, readerDB *gorm.DB) *ArtistRepository {
	return &ArtistRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the artist only if the tenant is active and below its
// artist ceiling. The tenant row is locked for the duration of the
// transaction so concurrent creates cannot both pass the count check.
func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error) {
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant domain.Tenant
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&tenant, "id = ?", artist.TenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTenantNotFound
			}
			return err
		}

		if !tenant.IsActive {
			return domain.ErrTenantInactive
		}

		var count int64
		if err := tx.Model(&domain.Artist{}).
			Where("tenant_id = ?", artist.TenantID).
			Count(&count).Error; err != nil {
			return err
		}

		if count >= int64(tenant.MaxArtists) {
			return &domain.QuotaExceededError{
				Resource: domain.ResourceArtists,
				Limit:    tenant.MaxArtists,
			}
		}

		return tx.Create(artist).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return artist, nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var artist domain.Artist
	if err := r.readerDB.WithContext(ctx).First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Artist, error) {
	var artists []domain.Artist
	if err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepository) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	if err := r.readerDB.WithContext(ctx).Model(&domain.Artist{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
