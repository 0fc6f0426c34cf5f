package repository

import (
	"github.com/naruhodo/newsapp/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
}

// NewsFilter restricts a news listing. Search values match as substrings on
// the whitelisted columns; Sort takes a whitelisted field name, optionally
// prefixed with '-' for descending order. Non-whitelisted fields are ignored.
type NewsFilter struct {
	Search map[string]string
	Sort   string
}

// NewsRepository defines the interface for news-related operations. All reads
// exclude soft-deleted rows.
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	Find(filter NewsFilter) ([]models.News, error)
	Update(news *models.News) error
	SoftDelete(id uint) error
	IncrementViews(news *models.News) error
}

// CommentRepository defines the interface for comment-related operations.
// A comment whose parent news is soft-deleted counts as nonexistent.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	FindByNewsID(newsID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	SoftDelete(id uint) error
}

// PhotoRepository defines the interface for photo-related operations
type PhotoRepository interface {
	Create(photo *models.Photo) error
	GetByNewsID(newsID uint) ([]models.Photo, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	News    NewsRepository
	Comment CommentRepository
	Photo   PhotoRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Comment: NewCommentRepository(db),
		Photo:   NewPhotoRepository(db),
	}
}
