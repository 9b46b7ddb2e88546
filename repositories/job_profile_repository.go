package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormJobProfileRepository struct {
	db *gorm.DB
}

func NewGormJobProfileRepository(db *gorm.DB) *GormJobProfileRepository {
	return &GormJobProfileRepository{db: db}
}

func (r *GormJobProfileRepository) Count(_ context.Context, tx *gorm.DB, search string) (int64, error) {
	db := useTx(r.db, tx).Model(&models.JobProfile{})
	if search != "" {
		db = db.Where("title LIKE ?", "%"+search+"%")
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormJobProfileRepository) List(_ context.Context, tx *gorm.DB, in ListInput) ([]models.JobProfile, error) {
	db := useTx(r.db, tx).Preload("Department").Preload("CreatedBy")
	if in.Search != "" {
		db = db.Where("title LIKE ?", "%"+in.Search+"%")
	}
	var profiles []models.JobProfile
	err := db.Order("created_at DESC").Offset(in.Offset).Limit(in.Limit).Find(&profiles).Error
	return profiles, err
}

func (r *GormJobProfileRepository) GetByID(_ context.Context, tx *gorm.DB, jobProfileID uint) (models.JobProfile, error) {
	var profile models.JobProfile
	err := useTx(r.db, tx).Preload("Department").Preload("CreatedBy").First(&profile, jobProfileID).Error
	return profile, err
}

func (r *GormJobProfileRepository) Create(_ context.Context, tx *gorm.DB, profile *models.JobProfile) error {
	return useTx(r.db, tx).Create(profile).Error
}

func (r *GormJobProfileRepository) Save(_ context.Context, tx *gorm.DB, profile *models.JobProfile) error {
	return useTx(r.db, tx).Save(profile).Error
}

func (r *GormJobProfileRepository) DeleteByID(_ context.Context, tx *gorm.DB, jobProfileID uint) error {
	return useTx(r.db, tx).Delete(&models.JobProfile{}, jobProfileID).Error
}
