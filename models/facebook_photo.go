package models

import (
	"time"
)

type FacebookPhoto struct {
	ID        uint32         `gorm:"primarykey" json:"id"`
	AlbumID   uint32         `gorm:"not null;index" json:"albumId"`
	Album     *FacebookAlbum `gorm:"foreignKey:AlbumID" json:"-"`
	URL       string         `gorm:"size:2048;not null" json:"url"`
	Caption   string         `gorm:"type:text" json:"caption"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (FacebookPhoto) TableName() string {
	return "facebook_photos"
}
