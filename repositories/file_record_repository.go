package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormFileRecordRepository struct {
	db *gorm.DB
}

func NewGormFileRecordRepository(db *gorm.DB) *GormFileRecordRepository {
	return &GormFileRecordRepository{db: db}
}

func (r *GormFileRecordRepository) GetByKey(_ context.Context, tx *gorm.DB, key string) (models.FileRecord, error) {
	var record models.FileRecord
	err := useTx(r.db, tx).Where("`key` = ?", key).First(&record).Error
	return record, err
}

func (r *GormFileRecordRepository) ListByPathAndUser(_ context.Context, tx *gorm.DB, path string, userID uint) ([]models.FileRecord, error) {
	var records []models.FileRecord
	err := useTx(r.db, tx).Where("path = ? AND user_id = ?", path, userID).
		Order("name ASC").Find(&records).Error
	return records, err
}

func (r *GormFileRecordRepository) ListSharedAtPath(_ context.Context, tx *gorm.DB, keys []string, path string, excludeUserID uint) ([]models.FileRecord, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var records []models.FileRecord
	err := useTx(r.db, tx).Preload("User").
		Where("`key` IN ? AND path = ? AND user_id <> ?", keys, path, excludeUserID).
		Find(&records).Error
	return records, err
}

func (r *GormFileRecordRepository) ListByKeyPrefix(_ context.Context, tx *gorm.DB, prefix string) ([]models.FileRecord, error) {
	var records []models.FileRecord
	err := useTx(r.db, tx).Where("`key` LIKE ?", prefix+"%").Find(&records).Error
	return records, err
}

func (r *GormFileRecordRepository) Create(_ context.Context, tx *gorm.DB, record *models.FileRecord) error {
	return useTx(r.db, tx).Create(record).Error
}

func (r *GormFileRecordRepository) UpdateByID(_ context.Context, tx *gorm.DB, recordID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.FileRecord{}).Where("id = ?", recordID).Updates(updates).Error
}

func (r *GormFileRecordRepository) UpdateByKey(_ context.Context, tx *gorm.DB, key string, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.FileRecord{}).Where("`key` = ?", key).Updates(updates).Error
}

func (r *GormFileRecordRepository) DeleteByKey(_ context.Context, tx *gorm.DB, key string) error {
	return useTx(r.db, tx).Where("`key` = ?", key).Delete(&models.FileRecord{}).Error
}

func (r *GormFileRecordRepository) DeleteByKeyPrefix(_ context.Context, tx *gorm.DB, prefix string) error {
	return useTx(r.db, tx).Where("`key` LIKE ?", prefix+"%").Delete(&models.FileRecord{}).Error
}

func (r *GormFileRecordRepository) CountByPath(_ context.Context, tx *gorm.DB, path string) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.FileRecord{}).Where("path = ?", path).Count(&count).Error
	return count, err
}
