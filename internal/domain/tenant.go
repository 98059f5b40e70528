package domain

import (
	"time"
)

// ResourceKind identifies a tenant-scoped resource ceiling.
type ResourceKind string

const (
	ResourceArtists ResourceKind = "artists"
	ResourceWorks   ResourceKind = "works"
)

// IsValidResourceKind checks if a given resource kind is valid
func IsValidResourceKind(kind string) bool {
	return kind == string(ResourceArtists) || kind == string(ResourceWorks)
}

type Tenant struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	MaxArtists int       `gorm:"not null;default:5" json:"max_artists"`
	MaxWorks   int       `gorm:"not null;default:50" json:"max_works"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// CeilingFor returns the configured ceiling for the given resource kind.
func (t *Tenant) CeilingFor(kind ResourceKind) int {
	if kind == ResourceArtists {
		return t.MaxArtists
	}
	return t.MaxWorks
}
