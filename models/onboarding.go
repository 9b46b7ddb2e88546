package models

import "time"

const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

type OnboardingTask struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	OnboardingID uint       `gorm:"not null;index" json:"onboarding_id"`
	Title        string     `gorm:"type:varchar(100);not null" json:"title"`
	Description  string     `gorm:"type:varchar(2000);not null" json:"description"`
	MentorID     *uint      `json:"mentor_id"`
	Mentor       *Employee  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Status       string     `gorm:"type:varchar(20);default:Pending" json:"status"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Onboarding struct {
	ID           uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string           `gorm:"type:varchar(100);not null" json:"name"`
	Position     string           `gorm:"type:varchar(100);not null" json:"position"`
	StartDate    time.Time        `gorm:"not null" json:"start_date"`
	DepartmentID uint             `gorm:"not null;index" json:"department_id"`
	Department   *Department      `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Description  string           `gorm:"type:varchar(2000)" json:"description"`
	Avatar       string           `gorm:"type:varchar(500)" json:"avatar"`
	Tasks        []OnboardingTask `gorm:"foreignKey:OnboardingID;constraint:OnDelete:CASCADE" json:"tasks"`
	CreatedByID  uint             `gorm:"not null" json:"created_by_id"`
	CreatedBy    *User            `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
