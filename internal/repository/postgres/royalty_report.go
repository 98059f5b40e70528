package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

type RoyaltyReportRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoyaltyReportRepository(writerDB, readerDB *gorm.DB) *RoyaltyReportRepository {
	return &RoyaltyReportRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// CreateWithEarnings persists a report and its per-work earnings rows
// in one transaction. Every referenced work must belong to the report's
// tenant; any failure rolls back the whole batch. A second report for
// the same tenant, platform and period is rejected before insert, and
// the composite unique index backstops the check under concurrency.
func (r *RoyaltyReportRepository) CreateWithEarnings(ctx context.Context, report *domain.RoyaltyReport, earnings []domain.WorkEarnings) (*domain.RoyaltyReport, error) {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.ProcessedAt.IsZero() {
		report.ProcessedAt = time.Now().UTC()
	}

	err := r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.RoyaltyReport{}).
			Where("tenant_id = ? AND platform = ? AND period_type = ? AND period_start = ? AND period_end = ?",
				report.TenantID, report.Platform, report.PeriodType, report.PeriodStart, report.PeriodEnd).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateReportPeriod
		}

		workIDs := make([]string, 0, len(earnings))
		for _, e := range earnings {
			workIDs = append(workIDs, e.WorkID)
		}
		if len(workIDs) > 0 {
			var works []domain.Work
			if err := tx.Select("id", "tenant_id").
				Where("id IN ?", workIDs).
				Find(&works).Error; err != nil {
				return err
			}
			owned := make(map[string]string, len(works))
			for _, w := range works {
				owned[w.ID] = w.TenantID
			}
			for _, e := range earnings {
				tenantID, ok := owned[e.WorkID]
				if !ok || tenantID != report.TenantID {
					return &domain.WorkNotOwnedError{
						WorkID:   e.WorkID,
						TenantID: report.TenantID,
					}
				}
			}
		}

		if err := tx.Create(report).Error; err != nil {
			return err
		}

		for i := range earnings {
			if earnings[i].ID == "" {
				earnings[i].ID = uuid.New().String()
			}
			earnings[i].RoyaltyReportID = report.ID
		}
		if len(earnings) > 0 {
			if err := tx.CreateInBatches(earnings, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return report, nil
}

func (r *RoyaltyReportRepository) GetByID(ctx context.Context, id string) (*domain.RoyaltyReport, error) {
	var report domain.RoyaltyReport
	if err := r.readerDB.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *RoyaltyReportRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.RoyaltyReport, error) {
	var reports []domain.RoyaltyReport
	if err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("period_start DESC, created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *RoyaltyReportRepository) ListEarnings(ctx context.Context, reportID string) ([]domain.WorkEarnings, error) {
	var earnings []domain.WorkEarnings
	if err := r.readerDB.WithContext(ctx).
		Where("royalty_report_id = ?", reportID).
		Order("created_at ASC").
		Find(&earnings).Error; err != nil {
		return nil, err
	}
	return earnings, nil
}
