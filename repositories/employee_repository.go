package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

func (r *GormEmployeeRepository) applyFilters(db *gorm.DB, in ListEmployeesInput) *gorm.DB {
	if in.DepartmentID != nil {
		db = db.Where("department_id = ?", *in.DepartmentID)
	}
	if in.Status != "" {
		db = db.Where("status = ?", in.Status)
	}
	if in.Search != "" {
		like := "%" + in.Search + "%"
		db = db.Where("full_name LIKE ? OR email LIKE ? OR employee_id LIKE ?", like, like, like)
	}
	return db
}

func (r *GormEmployeeRepository) Count(_ context.Context, tx *gorm.DB, in ListEmployeesInput) (int64, error) {
	var count int64
	err := r.applyFilters(useTx(r.db, tx).Model(&models.Employee{}), in).Count(&count).Error
	return count, err
}

func (r *GormEmployeeRepository) List(_ context.Context, tx *gorm.DB, in ListEmployeesInput) ([]models.Employee, error) {
	db := r.applyFilters(useTx(r.db, tx), in).
		Preload("Department").Preload("JobProfile")
	var employees []models.Employee
	err := db.Order("created_at DESC").Offset(in.Offset).Limit(in.Limit).Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetByID(_ context.Context, tx *gorm.DB, employeeID uint) (models.Employee, error) {
	var employee models.Employee
	err := useTx(r.db, tx).Preload("Department").Preload("JobProfile").First(&employee, employeeID).Error
	return employee, err
}

func (r *GormEmployeeRepository) CountByEmail(_ context.Context, tx *gorm.DB, email string, excludeID uint) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Employee{}).Where("email = ?", email)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormEmployeeRepository) Create(_ context.Context, tx *gorm.DB, employee *models.Employee) error {
	return useTx(r.db, tx).Create(employee).Error
}

func (r *GormEmployeeRepository) UpdateByID(_ context.Context, tx *gorm.DB, employeeID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Employee{}).Where("id = ?", employeeID).Updates(updates).Error
}

func (r *GormEmployeeRepository) DeleteByID(_ context.Context, tx *gorm.DB, employeeID uint) error {
	return useTx(r.db, tx).Delete(&models.Employee{}, employeeID).Error
}

func (r *GormEmployeeRepository) CountByStatus(_ context.Context, tx *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := useTx(r.db, tx).Model(&models.Employee{}).
		Select("status", "COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
