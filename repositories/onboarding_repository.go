package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormOnboardingRepository struct {
	db *gorm.DB
}

func NewGormOnboardingRepository(db *gorm.DB) *GormOnboardingRepository {
	return &GormOnboardingRepository{db: db}
}

func (r *GormOnboardingRepository) Count(_ context.Context, tx *gorm.DB, search string) (int64, error) {
	db := useTx(r.db, tx).Model(&models.Onboarding{})
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormOnboardingRepository) List(_ context.Context, tx *gorm.DB, in ListInput) ([]models.Onboarding, error) {
	db := useTx(r.db, tx).
		Preload("Department").Preload("CreatedBy").Preload("Tasks").Preload("Tasks.Mentor")
	if in.Search != "" {
		db = db.Where("name LIKE ?", "%"+in.Search+"%")
	}
	var onboardings []models.Onboarding
	err := db.Order("created_at DESC").Offset(in.Offset).Limit(in.Limit).Find(&onboardings).Error
	return onboardings, err
}

func (r *GormOnboardingRepository) GetByID(_ context.Context, tx *gorm.DB, onboardingID uint) (models.Onboarding, error) {
	var onboarding models.Onboarding
	err := useTx(r.db, tx).
		Preload("Department").Preload("CreatedBy").Preload("Tasks").Preload("Tasks.Mentor").
		First(&onboarding, onboardingID).Error
	return onboarding, err
}

func (r *GormOnboardingRepository) Create(_ context.Context, tx *gorm.DB, onboarding *models.Onboarding) error {
	return useTx(r.db, tx).Create(onboarding).Error
}

func (r *GormOnboardingRepository) Save(_ context.Context, tx *gorm.DB, onboarding *models.Onboarding) error {
	return useTx(r.db, tx).Omit("Tasks").Save(onboarding).Error
}

func (r *GormOnboardingRepository) ReplaceTasks(_ context.Context, tx *gorm.DB, onboardingID uint, tasks []models.OnboardingTask) error {
	db := useTx(r.db, tx)
	if err := db.Where("onboarding_id = ?", onboardingID).Delete(&models.OnboardingTask{}).Error; err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}
	for i := range tasks {
		tasks[i].ID = 0
		tasks[i].OnboardingID = onboardingID
	}
	return db.Create(&tasks).Error
}

func (r *GormOnboardingRepository) DeleteByID(_ context.Context, tx *gorm.DB, onboardingID uint) error {
	db := useTx(r.db, tx)
	if err := db.Where("onboarding_id = ?", onboardingID).Delete(&models.OnboardingTask{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Onboarding{}, onboardingID).Error
}

type GormOnboardingTemplateRepository struct {
	db *gorm.DB
}

func NewGormOnboardingTemplateRepository(db *gorm.DB) *GormOnboardingTemplateRepository {
	return &GormOnboardingTemplateRepository{db: db}
}

func (r *GormOnboardingTemplateRepository) Count(_ context.Context, tx *gorm.DB, search string) (int64, error) {
	db := useTx(r.db, tx).Model(&models.OnboardingTemplate{})
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	var count int64
	err := db.Count(&count).Error
	return count, err
}

func (r *GormOnboardingTemplateRepository) List(_ context.Context, tx *gorm.DB, in ListInput) ([]models.OnboardingTemplate, error) {
	db := useTx(r.db, tx).
		Preload("Department").Preload("CreatedBy").Preload("Tasks").Preload("Tasks.Mentor")
	if in.Search != "" {
		db = db.Where("name LIKE ?", "%"+in.Search+"%")
	}
	var templates []models.OnboardingTemplate
	err := db.Order("created_at DESC").Offset(in.Offset).Limit(in.Limit).Find(&templates).Error
	return templates, err
}

func (r *GormOnboardingTemplateRepository) GetByID(_ context.Context, tx *gorm.DB, templateID uint) (models.OnboardingTemplate, error) {
	var template models.OnboardingTemplate
	err := useTx(r.db, tx).
		Preload("Department").Preload("CreatedBy").Preload("Tasks").Preload("Tasks.Mentor").
		First(&template, templateID).Error
	return template, err
}

func (r *GormOnboardingTemplateRepository) Create(_ context.Context, tx *gorm.DB, template *models.OnboardingTemplate) error {
	return useTx(r.db, tx).Create(template).Error
}

func (r *GormOnboardingTemplateRepository) Save(_ context.Context, tx *gorm.DB, template *models.OnboardingTemplate) error {
	return useTx(r.db, tx).Omit("Tasks").Save(template).Error
}

func (r *GormOnboardingTemplateRepository) ReplaceTasks(_ context.Context, tx *gorm.DB, templateID uint, tasks []models.TemplateTask) error {
	db := useTx(r.db, tx)
	if err := db.Where("template_id = ?", templateID).Delete(&models.TemplateTask{}).Error; err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}
	for i := range tasks {
		tasks[i].ID = 0
		tasks[i].TemplateID = templateID
	}
	return db.Create(&tasks).Error
}

func (r *GormOnboardingTemplateRepository) DeleteByID(_ context.Context, tx *gorm.DB, templateID uint) error {
	db := useTx(r.db, tx)
	if err := db.Where("template_id = ?", templateID).Delete(&models.TemplateTask{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.OnboardingTemplate{}, templateID).Error
}
