package models

import "time"

const (
	AccessViewer = "viewer"
	AccessEditor = "editor"
	AccessAdmin  = "admin"
)

// ShareGrant authorizes exactly one of user/department/job profile to see
// the resource behind Key (a file key, a folder path, or a link path).
// At most one active grant exists per (key, target) pair; re-sharing
// updates AccessType in place.
type ShareGrant struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Key          string      `gorm:"type:varchar(768);not null;index" json:"key"`
	UserID       *uint       `gorm:"index" json:"user_id"`
	User         *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DepartmentID *uint       `gorm:"index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	JobProfileID *uint       `gorm:"index" json:"job_profile_id"`
	JobProfile   *JobProfile `gorm:"foreignKey:JobProfileID" json:"job_profile,omitempty"`
	AccessType   string      `gorm:"type:varchar(10);default:viewer" json:"access_type"`
	SharedByID   uint        `gorm:"not null" json:"shared_by_id"`
	SharedBy     *User       `gorm:"foreignKey:SharedByID" json:"shared_by,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func ValidAccessType(t string) bool {
	return t == AccessViewer || t == AccessEditor || t == AccessAdmin
}
