package domain

import (
	"time"
)

type Artist struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID    *string   `gorm:"type:uuid" json:"user_id,omitempty"`
	StageName string    `gorm:"type:text;not null" json:"stage_name"`
	LegalName string    `gorm:"type:text" json:"legal_name,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}
