package models

import "time"

// FileRecord is the catalog entry for an uploaded object. Key is the full
// object-store identifier; Path is always the directory prefix of Key.
type FileRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Key       string    `gorm:"type:varchar(768);not null;index" json:"key"`
	Path      string    `gorm:"type:varchar(768);index" json:"path"`
	Type      string    `gorm:"type:varchar(100)" json:"type"`
	Size      int64     `gorm:"not null" json:"size"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Shared   bool   `gorm:"-" json:"shared,omitempty"`
	Owner    string `gorm:"-" json:"owner,omitempty"`
	SharedBy string `gorm:"-" json:"shared_by,omitempty"`
	Access   string `gorm:"-" json:"access_type,omitempty"`
}
