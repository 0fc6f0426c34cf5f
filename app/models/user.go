package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Users are never physically deleted.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100)" json:"name" validate:"required,max=100"`
	LastName  string    `gorm:"type:varchar(100)" json:"lastName" validate:"required,max=100"`
	Email     string    `gorm:"uniqueIndex;type:varchar(30)" json:"email" validate:"required,email,max=30"`
	Password  string    `gorm:"type:varchar(100)" json:"-" validate:"required,min=5,max=100"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the subset of account fields exposed in API responses.
type PublicUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
}

// Public strips the credential fields from a user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Name:     u.Name,
		LastName: u.LastName,
		Email:    u.Email,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// CheckPasswordHash compares the given password with the stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
