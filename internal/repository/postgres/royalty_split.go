package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

type RoyaltySplitRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoyaltySplitRepository(writerDB, readerDB *gorm.DB) *RoyaltySplitRepository {
	return &RoyaltySplitRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create appends a split to the work's ledger. The work row is locked
// so two overlapping inserts cannot both read a sum that leaves room
// and push the total past 100%.
func (r *RoyaltySplitRepository) Create(ctx context.Context, split *domain.RoyaltySplit) (*domain.RoyaltySplit, error) {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var work domain.Work
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&work, "id = ?", split.WorkID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrWorkNotFound
			}
			return err
		}

		var current decimal.Decimal
		if err := tx.Raw(
			"SELECT COALESCE(SUM(percentage), 0) FROM royalty_splits WHERE work_id = ?",
			split.WorkID,
		).Scan(&current).Error; err != nil {
			return err
		}

		if current.Add(split.Percentage).GreaterThan(domain.MaxSplitPercentage) {
			return &domain.SplitOverflowError{
				Current:   current,
				Attempted: split.Percentage,
			}
		}

		return tx.Create(split).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return split, nil
}

func (r *RoyaltySplitRepository) ListByWork(ctx context.Context, workID string) ([]domain.RoyaltySplit, error) {
	var splits []domain.RoyaltySplit
	if err := r.readerDB.WithContext(ctx).
		Where("work_id = ?", workID).
		Order("created_at ASC").
		Find(&splits).Error; err != nil {
		return nil, err
	}
	return splits, nil
}

func (r *RoyaltySplitRepository) TotalPercentage(ctx context.Context, workID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.readerDB.WithContext(ctx).Raw(
		"SELECT COALESCE(SUM(percentage), 0) FROM royalty_splits WHERE work_id = ?",
		workID,
	).Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
