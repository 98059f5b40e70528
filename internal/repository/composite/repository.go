package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/labelgrid/royalty-engine/internal/config"
	"github.com/labelgrid/royalty-engine/internal/repository"
	"github.com/labelgrid/royalty-engine/internal/repository/opensearch"
	"github.com/labelgrid/royalty-engine/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewSearchRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Tenant() repository.TenantRepository {
	return r.postgresRepo.Tenant()
}

func (r *compositeRepository) Artist() repository.ArtistRepository {
	return r.postgresRepo.Artist()
}

func (r *compositeRepository) Work() repository.WorkRepository {
	return r.postgresRepo.Work()
}

func (r *compositeRepository) RoyaltySplit() repository.RoyaltySplitRepository {
	return r.postgresRepo.RoyaltySplit()
}

func (r *compositeRepository) RoyaltyReport() repository.RoyaltyReportRepository {
	return r.postgresRepo.RoyaltyReport()
}

func (r *compositeRepository) Analytics() repository.AnalyticsRepository {
	return r.postgresRepo.Analytics()
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
