package models

import (
	"time"
)

// News represents a news article in the system. Deletion is soft: the row stays
// in place with is_deleted set, and default reads exclude it.
type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=5,max=255"`
	Content   string    `gorm:"type:text" json:"content"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Views     uint      `gorm:"default:0" json:"views"`
	IsDeleted bool      `gorm:"index;default:false" json:"-"`
	Photos    []Photo   `gorm:"foreignKey:NewsID" json:"photos,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}
