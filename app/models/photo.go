package models

import (
	"time"
)

// Photo is an image attached to a news article at creation time. The URL is
// the storage path relative to the upload root; the row exists only if the
// physical file write succeeded first.
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"index" json:"news_id"`
	URL       string    `gorm:"type:varchar(255)" json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Photo) TableName() string {
	return "photos"
}
