package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormShareGrantRepository struct {
	db *gorm.DB
}

func NewGormShareGrantRepository(db *gorm.DB) *GormShareGrantRepository {
	return &GormShareGrantRepository{db: db}
}

func applyTarget(db *gorm.DB, target ShareTarget) *gorm.DB {
	switch {
	case target.UserID != nil:
		return db.Where("user_id = ?", *target.UserID)
	case target.DepartmentID != nil:
		return db.Where("department_id = ?", *target.DepartmentID)
	case target.JobProfileID != nil:
		return db.Where("job_profile_id = ?", *target.JobProfileID)
	}
	return db
}

func (r *GormShareGrantRepository) GetByKeyAndTarget(_ context.Context, tx *gorm.DB, key string, target ShareTarget) (models.ShareGrant, error) {
	var grant models.ShareGrant
	err := applyTarget(useTx(r.db, tx).Where("`key` = ?", key), target).First(&grant).Error
	return grant, err
}

func (r *GormShareGrantRepository) ListForCaller(_ context.Context, tx *gorm.DB, userID uint, departmentID, jobProfileID *uint) ([]models.ShareGrant, error) {
	db := useTx(r.db, tx).Preload("SharedBy")

	cond := "user_id = ?"
	args := []interface{}{userID}
	if departmentID != nil {
		cond += " OR department_id = ?"
		args = append(args, *departmentID)
	}
	if jobProfileID != nil {
		cond += " OR job_profile_id = ?"
		args = append(args, *jobProfileID)
	}

	var grants []models.ShareGrant
	err := db.Where(cond, args...).Find(&grants).Error
	return grants, err
}

func (r *GormShareGrantRepository) ListByKey(_ context.Context, tx *gorm.DB, key string) ([]models.ShareGrant, error) {
	var grants []models.ShareGrant
	err := useTx(r.db, tx).
		Preload("User").Preload("Department").Preload("JobProfile").Preload("SharedBy").
		Where("`key` = ?", key).Find(&grants).Error
	return grants, err
}

func (r *GormShareGrantRepository) Create(_ context.Context, tx *gorm.DB, grant *models.ShareGrant) error {
	return useTx(r.db, tx).Create(grant).Error
}

func (r *GormShareGrantRepository) UpdateAccessByID(_ context.Context, tx *gorm.DB, grantID uint, accessType string) error {
	return useTx(r.db, tx).Model(&models.ShareGrant{}).Where("id = ?", grantID).
		Update("access_type", accessType).Error
}

func (r *GormShareGrantRepository) DeleteByKeyAndTarget(_ context.Context, tx *gorm.DB, key string, target ShareTarget) (int64, error) {
	result := applyTarget(useTx(r.db, tx).Where("`key` = ?", key), target).Delete(&models.ShareGrant{})
	return result.RowsAffected, result.Error
}

func (r *GormShareGrantRepository) DeleteByKey(_ context.Context, tx *gorm.DB, key string) error {
	return useTx(r.db, tx).Where("`key` = ?", key).Delete(&models.ShareGrant{}).Error
}

func (r *GormShareGrantRepository) DeleteByKeyPrefix(_ context.Context, tx *gorm.DB, prefix string) error {
	return useTx(r.db, tx).Where("`key` LIKE ?", prefix+"%").Delete(&models.ShareGrant{}).Error
}
