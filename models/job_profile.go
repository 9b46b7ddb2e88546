package models

import "time"

type JobProfile struct {
	ID               uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string      `gorm:"type:varchar(100);not null" json:"title"`
	Description      string      `gorm:"type:varchar(2000);not null" json:"description"`
	DepartmentID     uint        `gorm:"not null;index" json:"department_id"`
	Department       *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Responsibilities []string    `gorm:"serializer:json" json:"responsibilities"`
	Requirements     []string    `gorm:"serializer:json" json:"requirements"`
	Skills           []string    `gorm:"serializer:json" json:"skills"`
	Positions        int         `gorm:"default:1" json:"positions"`
	ExperienceLevel  string      `gorm:"type:varchar(20);default:entry" json:"experience_level"`
	SalaryMin        float64     `gorm:"default:0" json:"salary_min"`
	SalaryMax        float64     `gorm:"default:0" json:"salary_max"`
	SalaryCurrency   string      `gorm:"type:varchar(10);default:USD" json:"salary_currency"`
	EmploymentType   string      `gorm:"type:varchar(20);default:full-time" json:"employment_type"`
	Location         string      `gorm:"type:varchar(20);default:on-site" json:"location"`
	IsActive         bool        `gorm:"default:true" json:"is_active"`
	CreatedByID      uint        `gorm:"not null" json:"created_by_id"`
	CreatedBy        *User       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
