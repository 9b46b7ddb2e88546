package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormDepartmentRepository struct {
	db *gorm.DB
}

func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

func (r *GormDepartmentRepository) Count(_ context.Context, tx *gorm.DB, search string) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Department{})
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormDepartmentRepository) List(_ context.Context, tx *gorm.DB, in ListInput) ([]models.Department, error) {
	db := useTx(r.db, tx).Preload("Head")
	if in.Search != "" {
		db = db.Where("name LIKE ?", "%"+in.Search+"%")
	}
	var departments []models.Department
	err := db.Order("name ASC").Offset(in.Offset).Limit(in.Limit).Find(&departments).Error
	return departments, err
}

func (r *GormDepartmentRepository) GetByID(_ context.Context, tx *gorm.DB, departmentID uint) (models.Department, error) {
	var department models.Department
	err := useTx(r.db, tx).Preload("Head").First(&department, departmentID).Error
	return department, err
}

func (r *GormDepartmentRepository) CountByName(_ context.Context, tx *gorm.DB, name string, excludeID uint) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Department{}).Where("name = ?", name)
	if excludeID > 0 {
		db = db.Where("id <> ?", excludeID)
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormDepartmentRepository) Create(_ context.Context, tx *gorm.DB, department *models.Department) error {
	return useTx(r.db, tx).Create(department).Error
}

func (r *GormDepartmentRepository) UpdateByID(_ context.Context, tx *gorm.DB, departmentID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Department{}).Where("id = ?", departmentID).Updates(updates).Error
}

func (r *GormDepartmentRepository) DeleteByID(_ context.Context, tx *gorm.DB, departmentID uint) error {
	return useTx(r.db, tx).Delete(&models.Department{}, departmentID).Error
}

func (r *GormDepartmentRepository) EmployeeCounts(_ context.Context, tx *gorm.DB, departmentIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(departmentIDs))
	if len(departmentIDs) == 0 {
		return counts, nil
	}

	type row struct {
		DepartmentID uint
		Total        int64
	}
	var rows []row
	err := useTx(r.db, tx).Model(&models.Employee{}).
		Select("department_id", "COUNT(*) AS total").
		Where("department_id IN ?", departmentIDs).
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.DepartmentID] = row.Total
	}
	return counts, nil
}
