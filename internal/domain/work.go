package domain

import (
	"slices"
	"time"
)

// DistributionStatus is a work's position in the platform-delivery lifecycle.
//
// Lifecycle: pending -> processing -> {live, failed}; live -> removed.
type DistributionStatus string

const (
	DistributionPending    DistributionStatus = "pending"
	DistributionProcessing DistributionStatus = "processing"
	DistributionLive       DistributionStatus = "live"
	DistributionFailed     DistributionStatus = "failed"
	DistributionRemoved    DistributionStatus = "removed"
)

// Platform is a supported streaming platform.
type Platform string

const (
	PlatformSpotify      Platform = "spotify"
	PlatformAppleMusic   Platform = "apple_music"
	PlatformYouTubeMusic Platform = "youtube_music"
	PlatformAmazonMusic  Platform = "amazon_music"
	PlatformDeezer       Platform = "deezer"
)

// ValidPlatforms contains every supported streaming platform
var ValidPlatforms = []Platform{
	PlatformSpotify,
	PlatformAppleMusic,
	PlatformYouTubeMusic,
	PlatformAmazonMusic,
	PlatformDeezer,
}

// IsValidPlatform checks if a given platform name is supported
func IsValidPlatform(platform string) bool {
	return slices.Contains(ValidPlatforms, Platform(platform))
}

// InvalidPlatforms returns the subset of names that are not supported
// platforms, preserving input order.
func InvalidPlatforms(names []string) []string {
	var invalid []string
	for _, name := range names {
		if !IsValidPlatform(name) {
			invalid = append(invalid, name)
		}
	}
	return invalid
}

type Work struct {
	ID                 string             `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID           string             `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ArtistID           string             `gorm:"type:uuid;not null;index" json:"artist_id"`
	Title              string             `gorm:"type:text;not null" json:"title"`
	Genre              string             `gorm:"type:text" json:"genre,omitempty"`
	DurationSeconds    int                `gorm:"not null" json:"duration_seconds"`
	AudioURL           string             `gorm:"type:text" json:"audio_url,omitempty"`
	ArtworkURL         string             `gorm:"type:text" json:"artwork_url,omitempty"`
	DistributionStatus DistributionStatus `gorm:"type:text;not null;default:'pending'" json:"distribution_status"`
	CreatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant             *Tenant            `gorm:"foreignKey:TenantID" json:"-"`
	Artist             *Artist            `gorm:"foreignKey:ArtistID" json:"-"`
}

func (Work) TableName() string {
	return "works"
}

// WorkDocument is the search-index projection of a work. It carries the
// denormalized artist name so catalog search does not need a join.
type WorkDocument struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenant_id"`
	ArtistID           string             `json:"artist_id"`
	ArtistName         string             `json:"artist_name"`
	Title              string             `json:"title"`
	Genre              string             `json:"genre,omitempty"`
	DurationSeconds    int                `json:"duration_seconds"`
	DistributionStatus DistributionStatus `json:"distribution_status"`
	CreatedAt          time.Time          `json:"created_at"`
}

// WorkSearchFilter holds catalog search criteria.
type WorkSearchFilter struct {
	TenantID string `json:"tenant_id"`
	Query    string `json:"query"`
	Genre    string `json:"genre"`
	Status   string `json:"status"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}
