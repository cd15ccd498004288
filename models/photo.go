package models

import (
	"time"
)

type PhotoStatus string

const (
	PhotoStatusPending  PhotoStatus = "pending"
	PhotoStatusApproved PhotoStatus = "approved"
	PhotoStatusRejected PhotoStatus = "rejected"
)

// Valid reports whether s is one of the review states an admin may set.
func (s PhotoStatus) Valid() bool {
	switch s {
	case PhotoStatusPending, PhotoStatusApproved, PhotoStatusRejected:
		return true
	}
	return false
}

type Photo struct {
	ID          uint32      `gorm:"primarykey" json:"id"`
	TeamID      uint32      `gorm:"not null;index" json:"teamId"`
	Team        *Team       `gorm:"foreignKey:TeamID" json:"-"`
	ChallengeID uint32      `gorm:"not null;index" json:"challengeId"`
	Challenge   *Challenge  `gorm:"foreignKey:ChallengeID" json:"-"`
	PhotoURL    string      `gorm:"size:2048;not null" json:"photoUrl"`
	Status      PhotoStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes       string      `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (Photo) TableName() string {
	return "photos"
}
