package models

import "time"

// Folder mirrors a zero-byte "directory marker" object in the document
// store. Path is the canonical identifier and always ends with "/";
// Parent is the path of the containing folder ("" at the root).
type Folder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Path      string    `gorm:"type:varchar(768);not null;index" json:"path"`
	Parent    string    `gorm:"type:varchar(768);index" json:"parent"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FolderCount int64 `gorm:"-" json:"folder_count"`
	FileCount   int64 `gorm:"-" json:"file_count"`
}
