package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

// searchFields are the columns a news listing may be filtered on. Anything
// else in the query is silently ignored.
var searchFields = []string{
	"title",
	"user_id",
	"views",
	"created_at",
	"updated_at",
}

// orderByFields are the accepted sort keys; "user" sorts by the owner column.
var orderByFields = map[string]string{
	"title":      "title",
	"user":       "user_id",
	"views":      "views",
	"created_at": "created_at",
}

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create validates and persists a news article together with any attached
// photos. GORM writes the article and its photo rows in one transaction, so a
// failure never leaves a half-saved article behind.
func (r *newsRepository) Create(news *models.News) error {
	if verr := models.Validate(news); verr != nil {
		return verr
	}
	return r.db.Create(news).Error
}

// GetByID retrieves a live news article with its owner and live photos.
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.Preload("User").Preload("Photos").
		Where("id = ? AND is_deleted = ?", id, false).First(&news).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Post doesn't exist")
		}
		return nil, err
	}
	return &news, nil
}

// Find returns all live news matching the filter, ordered by the requested
// sort key (default: newest first). The result carries each article's owner.
func (r *newsRepository) Find(filter NewsFilter) ([]models.News, error) {
	q := r.db.Preload("User").Where("is_deleted = ?", false)

	for _, field := range searchFields {
		if value, ok := filter.Search[field]; ok && value != "" {
			q = q.Where(field+" LIKE ?", "%"+value+"%")
		}
	}

	q = q.Order(orderExpr(filter.Sort))

	var news []models.News
	err := q.Find(&news).Error
	return news, err
}

// orderExpr translates a sort key into an ORDER BY expression; unknown keys
// fall back to the default ordering.
func orderExpr(sort string) string {
	desc := strings.HasPrefix(sort, "-")
	column, ok := orderByFields[strings.TrimPrefix(sort, "-")]
	if !ok {
		return "created_at DESC"
	}
	if desc {
		return column + " DESC"
	}
	return column
}

// Update validates and persists changes to an existing news article
func (r *newsRepository) Update(news *models.News) error {
	if verr := models.Validate(news); verr != nil {
		return verr
	}
	return r.db.Save(news).Error
}

// SoftDelete marks a live news article as deleted. Children are not cascaded;
// the parent-news rule hides its comments from reads instead.
func (r *newsRepository) SoftDelete(id uint) error {
	res := r.db.Model(&models.News{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.NewNotFoundError("Post doesn't exist")
	}
	return nil
}

// IncrementViews bumps the view counter by one with a single UPDATE, keeping
// concurrent reads from losing increments, and reflects the new value on the
// given struct.
func (r *newsRepository) IncrementViews(news *models.News) error {
	err := r.db.Model(news).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return err
	}
	news.Views++
	return nil
}
