package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

// AnalyticsRepository computes reporting rollups with raw SQL directly
// over the earnings ledger. Nothing here is cached or materialized.
type AnalyticsRepository struct {
	readerDB *gorm.DB
}

func NewAnalyticsRepository(readerDB *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{readerDB: readerDB}
}

func (r *AnalyticsRepository) TenantTotals(ctx context.Context, tenantID string) (*domain.EarningsTotals, error) {
	var totals domain.EarningsTotals
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(we.streams), 0) AS streams,
		       COALESCE(SUM(we.revenue), 0) AS revenue
		FROM work_earnings we
		JOIN works w ON w.id = we.work_id
		WHERE w.tenant_id = ?`, tenantID).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// TenantRevenueBetween sums ingested report revenue over a period-start
// window. Used for month-over-month growth, where the bucket a report
// belongs to is the month its period started in.
func (r *AnalyticsRepository) TenantRevenueBetween(ctx context.Context, tenantID string, start, end time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_revenue), 0)
		FROM royalty_reports
		WHERE tenant_id = ? AND period_start >= ? AND period_start < ?`,
		tenantID, start, end).Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

func (r *AnalyticsRepository) TopWorksByStreams(ctx context.Context, tenantID string, limit int) ([]domain.WorkPerformance, error) {
	var rows []domain.WorkPerformance
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT w.id AS work_id,
		       w.title,
		       a.stage_name AS artist_name,
		       SUM(we.streams) AS streams,
		       SUM(we.revenue) AS revenue
		FROM work_earnings we
		JOIN works w ON w.id = we.work_id
		JOIN artists a ON a.id = w.artist_id
		WHERE w.tenant_id = ?
		GROUP BY w.id, w.title, a.stage_name, w.created_at
		ORDER BY streams DESC, w.created_at ASC
		LIMIT ?`, tenantID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) ArtistTotals(ctx context.Context, artistID string) (*domain.EarningsTotals, error) {
	var totals domain.EarningsTotals
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(we.streams), 0) AS streams,
		       COALESCE(SUM(we.revenue), 0) AS revenue
		FROM work_earnings we
		JOIN works w ON w.id = we.work_id
		WHERE w.artist_id = ?`, artistID).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *AnalyticsRepository) ArtistMonthlyEarnings(ctx context.Context, artistID string) ([]domain.MonthlyEarnings, error) {
	var rows []domain.MonthlyEarnings
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT TO_CHAR(rr.period_start, 'YYYY-MM') AS month,
		       COALESCE(SUM(we.streams), 0) AS streams,
		       COALESCE(SUM(we.revenue), 0) AS revenue
		FROM work_earnings we
		JOIN works w ON w.id = we.work_id
		JOIN royalty_reports rr ON rr.id = we.royalty_report_id
		WHERE w.artist_id = ?
		GROUP BY TO_CHAR(rr.period_start, 'YYYY-MM')
		ORDER BY month ASC`, artistID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AnalyticsRepository) ArtistPlatformBreakdown(ctx context.Context, artistID string) ([]domain.PlatformEarnings, error) {
	var rows []domain.PlatformEarnings
	err := r.readerDB.WithContext(ctx).Raw(`
		SELECT we.platform,
		       COALESCE(SUM(we.streams), 0) AS streams,
		       COALESCE(SUM(we.revenue), 0) AS revenue
		FROM work_earnings we
		JOIN works w ON w.id = we.work_id
		WHERE w.artist_id = ?
		GROUP BY we.platform
		ORDER BY streams DESC`, artistID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
