package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/labelgrid/royalty-engine/internal/api/dto"
	"github.com/labelgrid/royalty-engine/internal/domain"
	"github.com/labelgrid/royalty-engine/internal/repository"
)

// RoyaltySplitService manages the append-only split ledger of a work. The
// 100% ceiling itself is enforced by the repository under a row lock; this
// layer validates the shape of the request.
type RoyaltySplitService struct {
	repo repository.Repository
}

func NewRoyaltySplitService(repo repository.Repository) *RoyaltySplitService {
	return &RoyaltySplitService{repo: repo}
}

func (s *RoyaltySplitService) AddSplit(ctx context.Context, workID string, req dto.CreateRoyaltySplitRequest) (*dto.RoyaltySplitResponse, error) {
	if !domain.IsValidRecipientType(req.RecipientType) {
		return nil, ErrInvalidRecipientType
	}
	if !req.Percentage.IsPositive() || req.Percentage.GreaterThan(domain.MaxSplitPercentage) {
		return nil, ErrInvalidPercentage
	}

	split, err := s.repo.RoyaltySplit().Create(ctx, req.ToRoyaltySplit(workID))
	if err != nil {
		return nil, err
	}
	return dto.FromRoyaltySplit(split), nil
}

func (s *RoyaltySplitService) ListSplits(ctx context.Context, workID string) (*dto.SplitLedgerResponse, error) {
	// Surface work existence explicitly so an empty ledger and a missing
	// work are distinguishable
	if _, err := s.repo.Work().GetByID(ctx, workID); err != nil {
		return nil, err
	}

	splits, err := s.repo.RoyaltySplit().ListByWork(ctx, workID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, split := range splits {
		total = total.Add(split.Percentage)
	}

	return &dto.SplitLedgerResponse{
		WorkID:          workID,
		TotalPercentage: total,
		Splits:          dto.FromRoyaltySplits(splits),
	}, nil
}
