package models

import (
	"time"
)

// FacebookAlbum is a denormalized mirror of an externally curated album;
// rows are created by admin upload and never updated afterwards.
type FacebookAlbum struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CoverImage  string    `gorm:"size:2048;not null" json:"coverImage"`
	FacebookURL string    `gorm:"size:2048;not null" json:"facebookUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (FacebookAlbum) TableName() string {
	return "facebook_albums"
}
