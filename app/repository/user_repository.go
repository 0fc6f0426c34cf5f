package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/naruhodo/newsapp/app/models"
	"github.com/naruhodo/newsapp/internal/pkg/apperror"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create validates and persists a new user. The email uniqueness rule is
// checked up front so the violation surfaces as a field error, not a driver
// error.
func (r *userRepository) Create(user *models.User) error {
	if verr := models.Validate(user); verr != nil {
		return verr
	}

	exists, err := r.EmailExists(user.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperror.FieldValidationError("email", "The e-mail is already registered.")
	}

	return r.db.Create(user).Error
}

// GetByID retrieves a user by its ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User doesn't exist")
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email address
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User doesn't exist")
		}
		return nil, err
	}
	return &user, nil
}

// EmailExists checks whether an email address is already registered
func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update validates and persists changes to an existing user
func (r *userRepository) Update(user *models.User) error {
	if verr := models.Validate(user); verr != nil {
		return verr
	}
	return r.db.Save(user).Error
}
