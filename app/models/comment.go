package models

import (
	"time"
)

// Comment belongs to a news article. A comment whose parent news is
// soft-deleted is treated as nonexistent even when the comment itself is live.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text" json:"content" validate:"required,min=1"`
	NewsID    uint      `gorm:"index" json:"news_id"`
	News      News      `gorm:"foreignKey:NewsID" json:"-"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	IsDeleted bool      `gorm:"index;default:false" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
