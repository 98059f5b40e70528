package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RecipientType categorizes who holds a royalty claim on a work. The
// recipient id is interpreted according to this type; it is not a foreign
// key into a single table.
type RecipientType string

const (
	RecipientArtist   RecipientType = "artist"
	RecipientWriter   RecipientType = "writer"
	RecipientProducer RecipientType = "producer"
	RecipientLabel    RecipientType = "label"
)

// ValidRecipientTypes contains every valid royalty recipient category
var ValidRecipientTypes = []RecipientType{
	RecipientArtist,
	RecipientWriter,
	RecipientProducer,
	RecipientLabel,
}

// IsValidRecipientType checks if a given recipient type is valid
func IsValidRecipientType(t string) bool {
	return slices.Contains(ValidRecipientTypes, RecipientType(t))
}

// PeriodType is the reporting cadence of a royalty report.
type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

// IsValidPeriodType checks if a given period type is valid
func IsValidPeriodType(t string) bool {
	return t == string(PeriodMonthly) || t == string(PeriodQuarterly) || t == string(PeriodYearly)
}

// MaxSplitPercentage is the ceiling on the sum of all split percentages
// for a single work.
var MaxSplitPercentage = decimal.NewFromInt(100)

// RoyaltySplit is a percentage-of-revenue claim on a work. Splits are
// immutable once created; re-balancing is done with corrective rows.
type RoyaltySplit struct {
	ID              string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	WorkID          string          `gorm:"type:uuid;not null;index" json:"work_id"`
	RecipientType   RecipientType   `gorm:"type:text;not null" json:"recipient_type"`
	RecipientID     string          `gorm:"type:uuid;not null" json:"recipient_id"`
	Percentage      decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"percentage"`
	RoleDescription string          `gorm:"type:text" json:"role_description,omitempty"`
	CreatedAt       time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Work            *Work           `gorm:"foreignKey:WorkID" json:"-"`
}

func (RoyaltySplit) TableName() string {
	return "royalty_splits"
}

// RoyaltyReport is an immutable record of one platform's performance data
// for one tenant over one period. Its earnings rows are created atomically
// with it and the totals are the sums over that batch.
type RoyaltyReport struct {
	ID           string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     string          `gorm:"type:uuid;not null;index;uniqueIndex:idx_report_tenant_platform_period" json:"tenant_id"`
	Platform     Platform        `gorm:"type:text;not null;uniqueIndex:idx_report_tenant_platform_period" json:"platform"`
	PeriodType   PeriodType      `gorm:"type:text;not null;uniqueIndex:idx_report_tenant_platform_period" json:"period_type"`
	PeriodStart  time.Time       `gorm:"type:date;not null;uniqueIndex:idx_report_tenant_platform_period" json:"period_start"`
	PeriodEnd    time.Time       `gorm:"type:date;not null;uniqueIndex:idx_report_tenant_platform_period" json:"period_end"`
	TotalStreams int64           `gorm:"not null;default:0" json:"total_streams"`
	TotalRevenue decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_revenue"`
	ProcessedAt  time.Time       `gorm:"type:timestamp with time zone" json:"processed_at"`
	CreatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant         `gorm:"foreignKey:TenantID" json:"-"`
	Earnings     []WorkEarnings  `gorm:"foreignKey:RoyaltyReportID" json:"-"`
}

func (RoyaltyReport) TableName() string {
	return "royalty_reports"
}

// WorkEarnings is the per-work decomposition of a royalty report's totals.
// Append-only fact row; never updated.
type WorkEarnings struct {
	ID              string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	WorkID          string          `gorm:"type:uuid;not null;index" json:"work_id"`
	RoyaltyReportID string          `gorm:"type:uuid;not null;index" json:"royalty_report_id"`
	Platform        Platform        `gorm:"type:text;not null" json:"platform"`
	Streams         int64           `gorm:"not null;default:0" json:"streams"`
	Revenue         decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"revenue"`
	CreatedAt       time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Work            *Work           `gorm:"foreignKey:WorkID" json:"-"`
	Report          *RoyaltyReport  `gorm:"foreignKey:RoyaltyReportID" json:"-"`
}

func (WorkEarnings) TableName() string {
	return "work_earnings"
}
