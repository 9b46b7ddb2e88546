package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CountByEmail(_ context.Context, email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *GormUserRepository) Create(_ context.Context, tx *gorm.DB, user *models.User) error {
	return useTx(r.db, tx).Create(user).Error
}

func (r *GormUserRepository) GetByEmail(_ context.Context, tx *gorm.DB, email string) (models.User, error) {
	var user models.User
	err := useTx(r.db, tx).Preload("Department").Preload("JobProfile").
		Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *GormUserRepository) GetByID(_ context.Context, tx *gorm.DB, userID uint, preload bool) (models.User, error) {
	db := useTx(r.db, tx)
	if preload {
		db = db.Preload("Department").Preload("JobProfile")
	}
	var user models.User
	err := db.First(&user, userID).Error
	return user, err
}

func (r *GormUserRepository) List(_ context.Context, tx *gorm.DB, in ListUsersInput) ([]models.User, int64, error) {
	db := useTx(r.db, tx).Model(&models.User{})
	if in.DepartmentID != nil {
		db = db.Where("department_id = ?", *in.DepartmentID)
	}
	if in.Role != "" {
		db = db.Where("role = ?", in.Role)
	}
	if in.Status != "" {
		db = db.Where("status = ?", in.Status)
	}
	if in.Search != "" {
		like := "%" + in.Search + "%"
		db = db.Where("name LIKE ? OR email LIKE ? OR employee_id LIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := db.Preload("Department").Preload("JobProfile").
		Order("created_at DESC").
		Offset(in.Offset).Limit(in.Limit).
		Find(&users).Error
	return users, total, err
}

func (r *GormUserRepository) UpdateByID(_ context.Context, tx *gorm.DB, userID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *GormUserRepository) NamesByIDs(_ context.Context, tx *gorm.DB, userIDs []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	var users []models.User
	err := useTx(r.db, tx).Select("id", "name").Where("id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}
