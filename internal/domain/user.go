package domain

import (
	"time"
)

// User is the account identity behind the auth middleware's JWT claims
// (user_id, roles, tenant_id) and the nullable owner of an Artist row.
// Accounts are provisioned out of band; this service only reads the claims.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Email     string    `gorm:"type:text;not null;unique" json:"email"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Roles     []string  `gorm:"type:text[];not null;default:'{artist}'" json:"roles"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
