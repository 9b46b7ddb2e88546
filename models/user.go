package models

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID              uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string      `gorm:"type:varchar(50);not null" json:"name"`
	Email           string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string      `gorm:"type:varchar(255);not null" json:"-"`
	Role            string      `gorm:"type:varchar(20);default:employee;index" json:"role"`
	DepartmentID    *uint       `gorm:"index" json:"department_id"`
	Department      *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	JobProfileID    *uint       `gorm:"index" json:"job_profile_id"`
	JobProfile      *JobProfile `gorm:"foreignKey:JobProfileID" json:"job_profile,omitempty"`
	JobTitle        string      `gorm:"type:varchar(100)" json:"job_title"`
	EmployeeID      string      `gorm:"type:varchar(16);uniqueIndex" json:"employee_id"`
	StartDate       *time.Time  `json:"start_date"`
	Status          string      `gorm:"type:varchar(20);default:active" json:"status"`
	Avatar          string      `gorm:"type:varchar(500)" json:"avatar"`
	Phone           string      `gorm:"type:varchar(30)" json:"phone"`
	LastLogin       *time.Time  `json:"last_login"`
	IsEmailVerified bool        `gorm:"default:false" json:"is_email_verified"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
