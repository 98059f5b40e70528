package service

import (
	"context"
	"fmt"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

// DistributionService moves works through the platform-delivery lifecycle.
// It validates readiness up front, then relies on a conditional state
// transition so a work in flight is never dispatched twice.
type DistributionService struct {
	repo     repository.Repository
	queueSvc QueueService
}

func NewDistributionService(repo repository.Repository, queueSvc QueueService) *DistributionService {
	return &DistributionService{
		repo:     repo,
		queueSvc: queueSvc,
	}
}

func (s *DistributionService) RequestDistribution(ctx context.Context, workID string, req dto.DistributeWorkRequest) (*dto.DistributionResponse, error) {
	if len(req.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}
	if invalid := domain.InvalidPlatforms(req.Platforms); len(invalid) > 0 {
		return nil, &domain.InvalidPlatformError{Platforms: invalid}
	}

	work, err := s.repo.Work().GetWithArtist(ctx, workID)
	if err != nil {
		return nil, err
	}

	if work.AudioURL == "" {
		return nil, domain.ErrMissingAudio
	}
	if work.ArtworkURL == "" {
		return nil, domain.ErrMissingArtwork
	}
	if work.Artist == nil || !work.Artist.IsActive {
		return nil, domain.ErrArtistInactive
	}

	updated, err := s.repo.Work().MarkProcessing(ctx, workID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DistributionResponse{
		WorkID:             workID,
		DistributionStatus: string(domain.DistributionProcessing),
		Platforms:          req.Platforms,
		Dispatched:         updated,
	}

	// A work already in processing has a delivery in flight, so a repeated
	// request must not trigger a second one
	if !updated {
		return resp, nil
	}

	doc := dto.FromWorkToDocument(work, work.Artist.StageName)
	if err := s.queueSvc.SendDispatchMessage(ctx, doc, req.Platforms); err != nil {
		fmt.Printf("failed to send dispatch message to SQS: %v\n", err)
	}

	return resp, nil
}
