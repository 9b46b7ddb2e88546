package models

import "time"

// ExternalLink is a pointer-only catalog entry with no backing object;
// it participates in the hierarchy and sharing exactly like a file.
type ExternalLink struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	URL       string    `gorm:"type:varchar(2000);not null" json:"url"`
	Path      string    `gorm:"type:varchar(768);index" json:"path"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Shared   bool   `gorm:"-" json:"shared,omitempty"`
	Owner    string `gorm:"-" json:"owner,omitempty"`
	SharedBy string `gorm:"-" json:"shared_by,omitempty"`
	Access   string `gorm:"-" json:"access_type,omitempty"`
}
