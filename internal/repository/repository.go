package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

//go:generate mockery --name ArtistRepository --output ../mocks
type ArtistRepository interface {
	// Create inserts a new artist after re-checking the tenant's artist
	// ceiling under a tenant row lock, so concurrent creations cannot both
	// slip past the quota.
	Create(ctx context.Context, artist *domain.Artist) (*domain.Artist, error)
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Artist, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name WorkRepository --output ../mocks
type WorkRepository interface {
	// Create inserts a new work after re-checking the tenant's work ceiling
	// and the artist's tenant membership under a tenant row lock.
	Create(ctx context.Context, work *domain.Work) (*domain.Work, error)
	GetByID(ctx context.Context, id string) (*domain.Work, error)
	GetWithArtist(ctx context.Context, id string) (*domain.Work, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Work, error)
	ListByArtist(ctx context.Context, artistID string) ([]domain.Work, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
	CountByArtist(ctx context.Context, artistID string) (int64, error)
	// MarkProcessing conditionally moves the work into processing. It
	// reports false when the work is already processing, in which case the
	// caller must not trigger another platform delivery.
	MarkProcessing(ctx context.Context, id string) (bool, error)
	// ResolveDistribution finishes a delivery attempt, moving the work from
	// processing to live or failed. It reports false when the work is not
	// currently processing.
	ResolveDistribution(ctx context.Context, id string, status domain.DistributionStatus) (bool, error)
}

//go:generate mockery --name RoyaltySplitRepository --output ../mocks
type RoyaltySplitRepository interface {
	// Create inserts a split after recomputing the work's percentage total
	// under a work row lock; it fails with domain.SplitOverflowError when
	// the new split would push the total past 100%.
	Create(ctx context.Context, split *domain.RoyaltySplit) (*domain.RoyaltySplit, error)
	ListByWork(ctx context.Context, workID string) ([]domain.RoyaltySplit, error)
	TotalPercentage(ctx context.Context, workID string) (decimal.Decimal, error)
}

//go:generate mockery --name RoyaltyReportRepository --output ../mocks
type RoyaltyReportRepository interface {
	// CreateWithEarnings persists the report and all of its earnings rows in
	// one transaction. Ownership of every referenced work is re-validated
	// inside the transaction; any violation aborts the whole ingestion.
	CreateWithEarnings(ctx context.Context, report *domain.RoyaltyReport, earnings []domain.WorkEarnings) (*domain.RoyaltyReport, error)
	GetByID(ctx context.Context, id string) (*domain.RoyaltyReport, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.RoyaltyReport, error)
	ListEarnings(ctx context.Context, reportID string) ([]domain.WorkEarnings, error)
}

//go:generate mockery --name AnalyticsRepository --output ../mocks
type AnalyticsRepository interface {
	TenantTotals(ctx context.Context, tenantID string) (*domain.EarningsTotals, error)
	// TenantRevenueBetween sums earnings revenue for reports whose
	// period_start falls in [start, end).
	TenantRevenueBetween(ctx context.Context, tenantID string, start, end time.Time) (decimal.Decimal, error)
	TopWorksByStreams(ctx context.Context, tenantID string, limit int) ([]domain.WorkPerformance, error)
	ArtistTotals(ctx context.Context, artistID string) (*domain.EarningsTotals, error)
	ArtistMonthlyEarnings(ctx context.Context, artistID string) ([]domain.MonthlyEarnings, error)
	ArtistPlatformBreakdown(ctx context.Context, artistID string) ([]domain.PlatformEarnings, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	IndexWork(ctx context.Context, doc *domain.WorkDocument) error
	SearchWorks(ctx context.Context, filter *domain.WorkSearchFilter) ([]domain.WorkDocument, error)
	CreateIndex(ctx context.Context, tenantID string) error
	DeleteIndex(ctx context.Context, tenantID string) error
	DeleteWork(ctx context.Context, tenantID, workID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Tenant() TenantRepository
	Artist() ArtistRepository
	Work() WorkRepository
	RoyaltySplit() RoyaltySplitRepository
	RoyaltyReport() RoyaltyReportRepository
	Analytics() AnalyticsRepository
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
