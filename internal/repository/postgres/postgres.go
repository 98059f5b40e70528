package postgres

import (
	"gorm.io/gorm"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

type postgresRepository struct {
	writerDB    *gorm.DB
	readerDB    *gorm.DB
	tenantRepo  repository.TenantRepository
	artistRepo  repository.ArtistRepository
	workRepo    repository.WorkRepository
	splitRepo   repository.RoyaltySplitRepository
	reportRepo  repository.RoyaltyReportRepository
	analyticsRp repository.AnalyticsRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		writerDB:    dbConnections.Writer,
		readerDB:    dbConnections.Reader,
		tenantRepo:  NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		artistRepo:  NewArtistRepository(dbConnections.Writer, dbConnections.Reader),
		workRepo:    NewWorkRepository(dbConnections.Writer, dbConnections.Reader),
		splitRepo:   NewRoyaltySplitRepository(dbConnections.Writer, dbConnections.Reader),
		reportRepo:  NewRoyaltyReportRepository(dbConnections.Writer, dbConnections.Reader),
		analyticsRp: NewAnalyticsRepository(dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Artist() repository.ArtistRepository {
	return r.artistRepo
}

func (r *postgresRepository) Work() repository.WorkRepository {
	return r.workRepo
}

func (r *postgresRepository) RoyaltySplit() repository.RoyaltySplitRepository {
	return r.splitRepo
}

func (r *postgresRepository) RoyaltyReport() repository.RoyaltyReportRepository {
	return r.reportRepo
}

func (r *postgresRepository) Analytics() repository.AnalyticsRepository {
	return r.analyticsRp
}
