package dto

import (
	"github.com/shopspring/decimal"
)

type CreateTenantRequest struct {
	Name       string `json:"name" binding:"required" example:"Velvet Records"`
	MaxArtists int    `json:"max_artists" example:"5"`
	MaxWorks   int    `json:"max_works" example:"50"`
}

type CreateArtistRequest struct {
	TenantID  string `json:"tenant_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	StageName string `json:"stage_name" binding:"required" example:"Nova Atlas"`
	LegalName string `json:"legal_name" example:"Jordan Reyes"`
}

type CreateWorkRequest struct {
	TenantID        string `json:"tenant_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	ArtistID        string `json:"artist_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440002"`
	Title           string `json:"title" binding:"required" example:"Midnight Transit"`
	Genre           string `json:"genre" example:"electronic"`
	DurationSeconds int    `json:"duration_seconds" binding:"required" example:"212"`
	AudioURL        string `json:"audio_url" example:"https://cdn.example.com/audio/midnight-transit.wav"`
	ArtworkURL      string `json:"artwork_url" example:"https://cdn.example.com/art/midnight-transit.jpg"`
}

type CreateRoyaltySplitRequest struct {
	RecipientType   string          `json:"recipient_type" binding:"required" example:"artist"`
	RecipientID     string          `json:"recipient_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440002"`
	Percentage      decimal.Decimal `json:"percentage" binding:"required" swaggertype:"number" example:"42.5"`
	RoleDescription string          `json:"role_description" example:"lead vocals"`
}

type DistributeWorkRequest struct {
	Platforms []string `json:"platforms" binding:"required" example:"spotify,apple_music"`
}

// WorkEarningEntry is one work's line in an ingested royalty report.
type WorkEarningEntry struct {
	WorkID  string          `json:"work_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440003"`
	Streams int64           `json:"streams" example:"150000"`
	Revenue decimal.Decimal `json:"revenue" swaggertype:"number" example:"423.17"`
}

type IngestRoyaltyReportRequest struct {
	TenantID    string             `json:"tenant_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Platform    string             `json:"platform" binding:"required" example:"spotify"`
	PeriodType  string             `json:"period_type" binding:"required" example:"monthly"`
	PeriodStart string             `json:"period_start" binding:"required" example:"2025-06-01"`
	PeriodEnd   string             `json:"period_end" binding:"required" example:"2025-06-30"`
	Earnings    []WorkEarningEntry `json:"earnings"`
}
