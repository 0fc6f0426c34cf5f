package repository

import (
	"gorm.io/gorm"

	"github.com/naruhodo/newsapp/app/models"
)

// photoRepository implements the PhotoRepository interface
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository creates a new photo repository instance
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

// Create persists a photo record
func (r *photoRepository) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

// GetByNewsID retrieves all photos attached to a news article
func (r *photoRepository) GetByNewsID(newsID uint) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("news_id = ?", newsID).Order("created_at").Find(&photos).Error
	return photos, err
}
