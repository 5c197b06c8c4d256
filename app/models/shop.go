package models

import "time"

// Shop stores an installed shop and its offline Admin API access token.
// Token issuance happens in the surrounding OAuth middleware; this record is
// only read to build authenticated sessions for Admin API calls.
type Shop struct {
	ID            uint64     `gorm:"primaryKey" json:"id"`
	Domain        string     `gorm:"uniqueIndex;type:varchar(191)" json:"domain"`
	AccessToken   string     `gorm:"type:text" json:"-"`
	Scopes        string     `gorm:"type:varchar(500)" json:"scopes"`
	InstalledAt   time.Time  `gorm:"autoCreateTime" json:"installed_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	UninstalledAt *time.Time `gorm:"type:timestamp;default:null" json:"uninstalled_at,omitempty"`
}

// TableName specifies the table name for the Shop model
func (Shop) TableName() string {
	return "shops"
}

// IsActive reports whether the shop still has the app installed.
func (s *Shop) IsActive() bool {
	return s.UninstalledAt == nil && s.AccessToken != ""
}
