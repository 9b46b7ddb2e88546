package models

import "time"

type TemplateTask struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TemplateID  uint      `gorm:"not null;index" json:"template_id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:varchar(2000);not null" json:"description"`
	MentorID    *uint     `json:"mentor_id"`
	Mentor      *Employee `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OnboardingTemplate struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	DepartmentID *uint          `gorm:"index" json:"department_id"`
	Department   *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Description  string         `gorm:"type:varchar(2000);not null" json:"description"`
	Tasks        []TemplateTask `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"tasks"`
	CreatedByID  uint           `gorm:"not null" json:"created_by_id"`
	CreatedBy    *User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
