package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create validates and persists a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	if verr := models.Validate(comment); verr != nil {
		return verr
	}
	return r.db.Create(comment).Error
}

// GetByID retrieves a live comment whose parent news is also live.
func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.liveComments().Where("comments.id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Comment doesn't exist")
		}
		return nil, err
	}
	return &comment, nil
}

// FindByNewsID returns all live comments of a news article, oldest first,
// with each commenter attached.
func (r *commentRepository) FindByNewsID(newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").
		Where("news_id = ? AND is_deleted = ?", newsID, false).
		Order("created_at").Find(&comments).Error
	return comments, err
}

// Update validates and persists changes to an existing comment
func (r *commentRepository) Update(comment *models.Comment) error {
	if verr := models.Validate(comment); verr != nil {
		return verr
	}
	return r.db.Save(comment).Error
}

// SoftDelete marks a live comment as deleted.
func (r *commentRepository) SoftDelete(id uint) error {
	res := r.db.Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Comment doesn't exist")
	}
	return nil
}

// liveComments scopes queries to comments that exist from the API's point of
// view: neither the comment nor its parent news is soft-deleted.
func (r *commentRepository) liveComments() *gorm.DB {
	return r.db.Preload("User").
		Select("comments.*").
		Joins("JOIN news ON news.id = comments.news_id").
		Where("comments.is_deleted = ? AND news.is_deleted = ?", false, false)
}
