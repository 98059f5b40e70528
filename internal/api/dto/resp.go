package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/labelgrid/royalty-engine/internal/domain"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID         string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name       string    `json:"name" example:"Velvet Records"`
	MaxArtists int       `json:"max_artists" example:"5"`
	MaxWorks   int       `json:"max_works" example:"50"`
	IsActive   bool      `json:"is_active" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt  time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// QuotaResponse reports whether a tenant may create one more resource of
// the requested kind.
type QuotaResponse struct {
	TenantID string `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Resource string `json:"resource" example:"artists"`
	Allowed  bool   `json:"allowed" example:"true"`
	Current  int64  `json:"current" example:"3"`
	Limit    int    `json:"limit" example:"5"`
	Reason   string `json:"reason,omitempty" example:"limit_reached"`
}

// ArtistResponse represents an artist in API responses
type ArtistResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440002"`
	TenantID  string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string    `json:"user_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440001"`
	StageName string    `json:"stage_name" example:"Nova Atlas"`
	LegalName string    `json:"legal_name,omitempty" example:"Jordan Reyes"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// WorkResponse represents a musical work in API responses
type WorkResponse struct {
	ID                 string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440003"`
	TenantID           string    `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ArtistID           string    `json:"artist_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	Title              string    `json:"title" example:"Midnight Transit"`
	Genre              string    `json:"genre,omitempty" example:"electronic"`
	DurationSeconds    int       `json:"duration_seconds" example:"212"`
	AudioURL           string    `json:"audio_url,omitempty" example:"https://cdn.example.com/audio/midnight-transit.wav"`
	ArtworkURL         string    `json:"artwork_url,omitempty" example:"https://cdn.example.com/art/midnight-transit.jpg"`
	DistributionStatus string    `json:"distribution_status" example:"pending"`
	CreatedAt          time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt          time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

// DistributionResponse is returned after a distribution request is accepted
type DistributionResponse struct {
	WorkID             string   `json:"work_id" example:"550e8400-e29b-41d4-a716-446655440003"`
	DistributionStatus string   `json:"distribution_status" example:"processing"`
	Platforms          []string `json:"platforms" example:"spotify,apple_music"`
	Dispatched         bool     `json:"dispatched" example:"true"`
}

// RoyaltySplitResponse represents one split in a work's ledger
type RoyaltySplitResponse struct {
	ID              string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440004"`
	WorkID          string          `json:"work_id" example:"550e8400-e29b-41d4-a716-446655440003"`
	RecipientType   string          `json:"recipient_type" example:"artist"`
	RecipientID     string          `json:"recipient_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	Percentage      decimal.Decimal `json:"percentage" swaggertype:"number" example:"42.5"`
	RoleDescription string          `json:"role_description,omitempty" example:"lead vocals"`
	CreatedAt       time.Time       `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// SplitLedgerResponse is a work's full split ledger plus its running total
type SplitLedgerResponse struct {
	WorkID          string                 `json:"work_id" example:"550e8400-e29b-41d4-a716-446655440003"`
	TotalPercentage decimal.Decimal        `json:"total_percentage" swaggertype:"number" example:"85.5"`
	Splits          []RoyaltySplitResponse `json:"splits"`
}

// RoyaltyReportResponse represents an ingested royalty report
type RoyaltyReportResponse struct {
	ID           string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440005"`
	TenantID     string          `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Platform     string          `json:"platform" example:"spotify"`
	PeriodType   string          `json:"period_type" example:"monthly"`
	PeriodStart  time.Time       `json:"period_start" example:"2025-06-01T00:00:00Z"`
	PeriodEnd    time.Time       `json:"period_end" example:"2025-06-30T00:00:00Z"`
	TotalStreams int64           `json:"total_streams" example:"275000"`
	TotalRevenue decimal.Decimal `json:"total_revenue" swaggertype:"number" example:"1000.00"`
	ProcessedAt  time.Time       `json:"processed_at" example:"2025-07-17T21:20:48Z"`
	CreatedAt    time.Time       `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

// WorkEarningsResponse represents one work's earnings under a report
type WorkEarningsResponse struct {
	ID       string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440006"`
	WorkID   string          `json:"work_id" example:"550e8400-e29b-41d4-a716-446655440003"`
	Platform string          `json:"platform" example:"spotify"`
	Streams  int64           `json:"streams" example:"150000"`
	Revenue  decimal.Decimal `json:"revenue" swaggertype:"number" example:"423.17"`
}

// TenantAnalyticsResponse is the label-level analytics rollup
type TenantAnalyticsResponse struct {
	TenantID           string                   `json:"tenant_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TotalArtists       int64                    `json:"total_artists" example:"4"`
	TotalWorks         int64                    `json:"total_works" example:"17"`
	TotalStreams       int64                    `json:"total_streams" example:"1250000"`
	TotalRevenue       decimal.Decimal          `json:"total_revenue" swaggertype:"number" example:"4821.90"`
	MonthlyGrowth      decimal.Decimal          `json:"monthly_growth" swaggertype:"number" example:"12.5"`
	TopPerformingWorks []domain.WorkPerformance `json:"top_performing_works"`
}

// ArtistAnalyticsResponse is the artist-level analytics rollup
type ArtistAnalyticsResponse struct {
	ArtistID          string                    `json:"artist_id" example:"550e8400-e29b-41d4-a716-446655440002"`
	TotalWorks        int64                     `json:"total_works" example:"6"`
	TotalStreams      int64                     `json:"total_streams" example:"410000"`
	TotalRevenue      decimal.Decimal           `json:"total_revenue" swaggertype:"number" example:"1502.35"`
	MonthlyStreams    []domain.MonthlyEarnings  `json:"monthly_streams"`
	PlatformBreakdown []domain.PlatformEarnings `json:"platform_breakdown"`
}
