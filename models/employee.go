package models

import "time"

type Employee struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string      `gorm:"type:varchar(100);not null" json:"full_name"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string      `gorm:"type:varchar(255);not null" json:"-"`
	DepartmentID uint        `gorm:"not null;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	JobProfileID uint        `gorm:"not null;index" json:"job_profile_id"`
	JobProfile   *JobProfile `gorm:"foreignKey:JobProfileID" json:"job_profile,omitempty"`
	JobTitle     string      `gorm:"type:varchar(100);not null" json:"job_title"`
	StartDate    time.Time   `gorm:"not null" json:"start_date"`
	Status       string      `gorm:"type:varchar(20);default:Active;index" json:"status"`
	EmployeeID   string      `gorm:"type:varchar(16);uniqueIndex" json:"employee_id"`
	Phone        string      `gorm:"type:varchar(30)" json:"phone"`
	Avatar       string      `gorm:"type:varchar(500)" json:"avatar"`
	Role         string      `gorm:"type:varchar(20);default:employee" json:"role"`
	LastLogin    *time.Time  `json:"last_login"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
