package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormFolderRepository struct {
	db *gorm.DB
}

func NewGormFolderRepository(db *gorm.DB) *GormFolderRepository {
	return &GormFolderRepository{db: db}
}

func (r *GormFolderRepository) GetByPath(_ context.Context, tx *gorm.DB, path string) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).Where("path = ?", path).First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) ListByParentAndUser(_ context.Context, tx *gorm.DB, parent string, userID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).Where("parent = ? AND user_id = ?", parent, userID).
		Order("name ASC").Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListByPaths(_ context.Context, tx *gorm.DB, paths []string) ([]models.Folder, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	var folders []models.Folder
	err := useTx(r.db, tx).Preload("User").Where("path IN ?", paths).Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListByPathPrefix(_ context.Context, tx *gorm.DB, prefix string) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).Where("path LIKE ?", prefix+"%").Find(&folders).Error
	return folders, err
}

// Upsert keys on (path, user): re-creating an existing path during bulk
// structure upload must not duplicate the record.
func (r *GormFolderRepository) Upsert(_ context.Context, tx *gorm.DB, folder *models.Folder) error {
	return useTx(r.db, tx).
		Where("path = ? AND user_id = ?", folder.Path, folder.UserID).
		Assign(map[string]interface{}{"name": folder.Name, "parent": folder.Parent}).
		FirstOrCreate(folder).Error
}

func (r *GormFolderRepository) UpdateByID(_ context.Context, tx *gorm.DB, folderID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.Folder{}).Where("id = ?", folderID).Updates(updates).Error
}

func (r *GormFolderRepository) DeleteByPathPrefix(_ context.Context, tx *gorm.DB, prefix string) error {
	return useTx(r.db, tx).Where("path LIKE ?", prefix+"%").Delete(&models.Folder{}).Error
}

func (r *GormFolderRepository) CountByParent(_ context.Context, tx *gorm.DB, parent string) (int64, error) {
	var count int64
	err := useTx(r.db, tx).Model(&models.Folder{}).Where("parent = ?", parent).Count(&count).Error
	return count, err
}
