package domain

import (
	"github.com/shopspring/decimal"
)

// EarningsTotals is an all-time streams/revenue rollup.
type EarningsTotals struct {
	Streams int64           `json:"streams"`
	Revenue decimal.Decimal `json:"revenue"`
}

// WorkPerformance is one row of a top-performing-works ranking.
type WorkPerformance struct {
	WorkID     string          `json:"work_id"`
	Title      string          `json:"title"`
	ArtistName string          `json:"artist_name"`
	Streams    int64           `json:"streams"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// MonthlyEarnings is one YYYY-MM bucket of an earnings time series. Months
// with no activity are absent rather than zero-filled.
type MonthlyEarnings struct {
	Month   string          `json:"month"`
	Streams int64           `json:"streams"`
	Revenue decimal.Decimal `json:"revenue"`
}

// PlatformEarnings is one platform's slice of an earnings breakdown.
type PlatformEarnings struct {
	Platform Platform        `json:"platform"`
	Streams  int64           `json:"streams"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// TenantAnalytics is the label-level reporting view, computed fresh from
// the earnings ledger on every call.
type TenantAnalytics struct {
	TenantID           string            `json:"tenant_id"`
	TotalArtists       int64             `json:"total_artists"`
	TotalWorks         int64             `json:"total_works"`
	TotalStreams       int64             `json:"total_streams"`
	TotalRevenue       decimal.Decimal   `json:"total_revenue"`
	MonthlyGrowth      decimal.Decimal   `json:"monthly_growth"`
	TopPerformingWorks []WorkPerformance `json:"top_performing_works"`
}

// ArtistAnalytics is the artist-level reporting view.
type ArtistAnalytics struct {
	ArtistID          string             `json:"artist_id"`
	TotalWorks        int64              `json:"total_works"`
	TotalStreams      int64              `json:"total_streams"`
	TotalRevenue      decimal.Decimal    `json:"total_revenue"`
	MonthlyStreams    []MonthlyEarnings  `json:"monthly_streams"`
	PlatformBreakdown []PlatformEarnings `json:"platform_breakdown"`
}
