package service

import (
	"context"
	"fmt"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

//go:generate mockery --name QueueService --output ../mocks
type QueueService interface {
	SendDispatchMessage(ctx context.Context, work *domain.WorkDocument, platforms []string) error
	SendIndexMessage(ctx context.Context, work *domain.WorkDocument) error
	SendExportMessage(ctx context.Context, report *domain.RoyaltyReport, earnings []domain.WorkEarnings) error
}

// CatalogService manages the tenant-scoped artist and work catalog. Both
// creations go through the repository-level quota guard.
type CatalogService struct {
	repo     repository.Repository
	queueSvc QueueService
}

func NewCatalogService(repo repository.Repository, queueSvc QueueService) *CatalogService {
	return &CatalogService{
		repo:     repo,
		queueSvc: queueSvc,
	}
}

func (s *CatalogService) CreateArtist(ctx context.Context, req dto.CreateArtistRequest) (*dto.ArtistResponse, error) {
	artist, err := s.repo.Artist().Create(ctx, req.ToArtist())
	if err != nil {
		return nil, err
	}
	return dto.FromArtist(artist), nil
}

func (s *CatalogService) GetArtist(ctx context.Context, id string) (*dto.ArtistResponse, error) {
	artist, err := s.repo.Artist().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromArtist(artist), nil
}

func (s *CatalogService) ListArtists(ctx context.Context, tenantID string) ([]dto.ArtistResponse, error) {
	artists, err := s.repo.Artist().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromArtists(artists), nil
}

func (s *CatalogService) CreateWork(ctx context.Context, req dto.CreateWorkRequest) (*dto.WorkResponse, error) {
	work, err := s.repo.Work().Create(ctx, req.ToWork())
	if err != nil {
		return nil, err
	}

	// Send message to SQS for asynchronous catalog indexing
	artist, err := s.repo.Artist().GetByID(ctx, work.ArtistID)
	if err == nil {
		doc := dto.FromWorkToDocument(work, artist.StageName)
		if err := s.queueSvc.SendIndexMessage(ctx, doc); err != nil {
			fmt.Printf("failed to send index message to SQS: %v\n", err)
		}
	}

	return dto.FromWork(work), nil
}

func (s *CatalogService) GetWork(ctx context.Context, id string) (*dto.WorkResponse, error) {
	work, err := s.repo.Work().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromWork(work), nil
}

func (s *CatalogService) ListWorks(ctx context.Context, tenantID string) ([]dto.WorkResponse, error) {
	works, err := s.repo.Work().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return dto.FromWorks(works), nil
}

func (s *CatalogService) ListWorksByArtist(ctx context.Context, artistID string) ([]dto.WorkResponse, error) {
	works, err := s.repo.Work().ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return dto.FromWorks(works), nil
}

func (s *CatalogService) SearchWorks(ctx context.Context, filter *domain.WorkSearchFilter) ([]domain.WorkDocument, error) {
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.Search().SearchWorks(ctx, filter)
}
