package dto

import (
	"github.com/labelgrid/royalty-engine/internal/domain"
)

// ToArtist converts a CreateArtistRequest DTO to an Artist domain model
func (r *CreateArtistRequest) ToArtist() *domain.Artist {
	artist := &domain.Artist{
		TenantID:  r.TenantID,
		StageName: r.StageName,
		LegalName: r.LegalName,
		IsActive:  true,
	}
	if r.UserID != "" {
		userID := r.UserID
		artist.UserID = &userID
	}
	return artist
}

// ToWork converts a CreateWorkRequest DTO to a Work domain model
func (r *CreateWorkRequest) ToWork() *domain.Work {
	return &domain.Work{
		TenantID:           r.TenantID,
		ArtistID:           r.ArtistID,
		Title:              r.Title,
		Genre:              r.Genre,
		DurationSeconds:    r.DurationSeconds,
		AudioURL:           r.AudioURL,
		ArtworkURL:         r.ArtworkURL,
		DistributionStatus: domain.DistributionPending,
	}
}

// ToRoyaltySplit converts a CreateRoyaltySplitRequest DTO to a RoyaltySplit
// domain model for the given work
func (r *CreateRoyaltySplitRequest) ToRoyaltySplit(workID string) *domain.RoyaltySplit {
	return &domain.RoyaltySplit{
		WorkID:          workID,
		RecipientType:   domain.RecipientType(r.RecipientType),
		RecipientID:     r.RecipientID,
		Percentage:      r.Percentage,
		RoleDescription: r.RoleDescription,
	}
}

// FromTenant converts a Tenant domain model to a TenantResponse DTO
func FromTenant(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:         tenant.ID,
		Name:       tenant.Name,
		MaxArtists: tenant.MaxArtists,
		MaxWorks:   tenant.MaxWorks,
		IsActive:   tenant.IsActive,
		CreatedAt:  tenant.CreatedAt,
		UpdatedAt:  tenant.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *FromTenant(&tenant)
	}
	return responses
}

// FromArtist converts an Artist domain model to an ArtistResponse DTO
func FromArtist(artist *domain.Artist) *ArtistResponse {
	resp := &ArtistResponse{
		ID:        artist.ID,
		TenantID:  artist.TenantID,
		StageName: artist.StageName,
		LegalName: artist.LegalName,
		IsActive:  artist.IsActive,
		CreatedAt: artist.CreatedAt,
		UpdatedAt: artist.UpdatedAt,
	}
	if artist.UserID != nil {
		resp.UserID = *artist.UserID
	}
	return resp
}

func FromArtists(artists []domain.Artist) []ArtistResponse {
	responses := make([]ArtistResponse, len(artists))
	for i, artist := range artists {
		responses[i] = *FromArtist(&artist)
	}
	return responses
}

// FromWork converts a Work domain model to a WorkResponse DTO
func FromWork(work *domain.Work) *WorkResponse {
	return &WorkResponse{
		ID:                 work.ID,
		TenantID:           work.TenantID,
		ArtistID:           work.ArtistID,
		Title:              work.Title,
		Genre:              work.Genre,
		DurationSeconds:    work.DurationSeconds,
		AudioURL:           work.AudioURL,
		ArtworkURL:         work.ArtworkURL,
		DistributionStatus: string(work.DistributionStatus),
		CreatedAt:          work.CreatedAt,
		UpdatedAt:          work.UpdatedAt,
	}
}

func FromWorks(works []domain.Work) []WorkResponse {
	responses := make([]WorkResponse, len(works))
	for i, work := range works {
		responses[i] = *FromWork(&work)
	}
	return responses
}

// FromRoyaltySplit converts a RoyaltySplit domain model to a response DTO
func FromRoyaltySplit(split *domain.RoyaltySplit) *RoyaltySplitResponse {
	return &RoyaltySplitResponse{
		ID:              split.ID,
		WorkID:          split.WorkID,
		RecipientType:   string(split.RecipientType),
		RecipientID:     split.RecipientID,
		Percentage:      split.Percentage,
		RoleDescription: split.RoleDescription,
		CreatedAt:       split.CreatedAt,
	}
}

func FromRoyaltySplits(splits []domain.RoyaltySplit) []RoyaltySplitResponse {
	responses := make([]RoyaltySplitResponse, len(splits))
	for i, split := range splits {
		responses[i] = *FromRoyaltySplit(&split)
	}
	return responses
}

// FromRoyaltyReport converts a RoyaltyReport domain model to a response DTO
func FromRoyaltyReport(report *domain.RoyaltyReport) *RoyaltyReportResponse {
	return &RoyaltyReportResponse{
		ID:           report.ID,
		TenantID:     report.TenantID,
		Platform:     string(report.Platform),
		PeriodType:   string(report.PeriodType),
		PeriodStart:  report.PeriodStart,
		PeriodEnd:    report.PeriodEnd,
		TotalStreams: report.TotalStreams,
		TotalRevenue: report.TotalRevenue,
		ProcessedAt:  report.ProcessedAt,
		CreatedAt:    report.CreatedAt,
	}
}

func FromRoyaltyReports(reports []domain.RoyaltyReport) []RoyaltyReportResponse {
	responses := make([]RoyaltyReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = *FromRoyaltyReport(&report)
	}
	return responses
}

// FromWorkEarnings converts WorkEarnings domain rows to response DTOs
func FromWorkEarnings(earnings []domain.WorkEarnings) []WorkEarningsResponse {
	responses := make([]WorkEarningsResponse, len(earnings))
	for i, e := range earnings {
		responses[i] = WorkEarningsResponse{
			ID:       e.ID,
			WorkID:   e.WorkID,
			Platform: string(e.Platform),
			Streams:  e.Streams,
			Revenue:  e.Revenue,
		}
	}
	return responses
}

// FromTenantAnalytics converts a TenantAnalytics domain model to a response DTO
func FromTenantAnalytics(a *domain.TenantAnalytics) *TenantAnalyticsResponse {
	return &TenantAnalyticsResponse{
		TenantID:           a.TenantID,
		TotalArtists:       a.TotalArtists,
		TotalWorks:         a.TotalWorks,
		TotalStreams:       a.TotalStreams,
		TotalRevenue:       a.TotalRevenue,
		MonthlyGrowth:      a.MonthlyGrowth,
		TopPerformingWorks: a.TopPerformingWorks,
	}
}

// FromArtistAnalytics converts an ArtistAnalytics domain model to a response DTO
func FromArtistAnalytics(a *domain.ArtistAnalytics) *ArtistAnalyticsResponse {
	return &ArtistAnalyticsResponse{
		ArtistID:          a.ArtistID,
		TotalWorks:        a.TotalWorks,
		TotalStreams:      a.TotalStreams,
		TotalRevenue:      a.TotalRevenue,
		MonthlyStreams:    a.MonthlyStreams,
		PlatformBreakdown: a.PlatformBreakdown,
	}
}

// FromWorkToDocument builds the search-index projection of a work
func FromWorkToDocument(work *domain.Work, artistName string) *domain.WorkDocument {
	return &domain.WorkDocument{
		ID:                 work.ID,
		TenantID:           work.TenantID,
		ArtistID:           work.ArtistID,
		ArtistName:         artistName,
		Title:              work.Title,
		Genre:              work.Genre,
		DurationSeconds:    work.DurationSeconds,
		DistributionStatus: work.DistributionStatus,
		CreatedAt:          work.CreatedAt,
	}
}
