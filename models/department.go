package models

import "time"

type Department struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description    string    `gorm:"type:varchar(500)" json:"description"`
	HeadID         *uint     `gorm:"index" json:"head_id"`
	Head           *User     `gorm:"foreignKey:HeadID" json:"head,omitempty"`
	BudgetAmount   float64   `gorm:"default:0" json:"budget_amount"`
	BudgetCurrency string    `gorm:"type:varchar(10);default:USD" json:"budget_currency"`
	Location       string    `gorm:"type:varchar(200)" json:"location"`
	Status         string    `gorm:"type:varchar(20);default:active" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	EmployeeCount int64 `gorm:"-" json:"employee_count"`
}
