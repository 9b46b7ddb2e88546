package repositories

import (
	"context"

	"github.com/mdowais-techno/team-hub-server/models"

	"gorm.io/gorm"
)

type GormExternalLinkRepository struct {
	db *gorm.DB
}

func NewGormExternalLinkRepository(db *gorm.DB) *GormExternalLinkRepository {
	return &GormExternalLinkRepository{db: db}
}

func (r *GormExternalLinkRepository) GetByNameAndPath(_ context.Context, tx *gorm.DB, name, path string) (models.ExternalLink, error) {
	var link models.ExternalLink
	err := useTx(r.db, tx).Where("name = ? AND path = ?", name, path).First(&link).Error
	return link, err
}

func (r *GormExternalLinkRepository) ListByPathAndUser(_ context.Context, tx *gorm.DB, path string, userID uint) ([]models.ExternalLink, error) {
	var links []models.ExternalLink
	err := useTx(r.db, tx).Where("path = ? AND user_id = ?", path, userID).
		Order("name ASC").Find(&links).Error
	return links, err
}

func (r *GormExternalLinkRepository) ListByPathPrefix(_ context.Context, tx *gorm.DB, prefix string) ([]models.ExternalLink, error) {
	var links []models.ExternalLink
	err := useTx(r.db, tx).Where("path LIKE ?", prefix+"%").Find(&links).Error
	return links, err
}

func (r *GormExternalLinkRepository) Create(_ context.Context, tx *gorm.DB, link *models.ExternalLink) error {
	return useTx(r.db, tx).Create(link).Error
}

func (r *GormExternalLinkRepository) UpdateByID(_ context.Context, tx *gorm.DB, linkID uint, updates map[string]interface{}) error {
	return useTx(r.db, tx).Model(&models.ExternalLink{}).Where("id = ?", linkID).Updates(updates).Error
}

func (r *GormExternalLinkRepository) DeleteByID(_ context.Context, tx *gorm.DB, linkID uint) error {
	return useTx(r.db, tx).Delete(&models.ExternalLink{}, linkID).Error
}

func (r *GormExternalLinkRepository) DeleteByPathPrefix(_ context.Context, tx *gorm.DB, prefix string) error {
	return useTx(r.db, tx).Where("path LIKE ?", prefix+"%").Delete(&models.ExternalLink{}).Error
}
