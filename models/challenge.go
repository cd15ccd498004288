package models

// ChallengeType distingue les défis sur place des objectifs photo.
type ChallengeType string

const (
	ChallengeTypeTask  ChallengeType = "défi"
	ChallengeTypePhoto ChallengeType = "photo"
)

type Challenge struct {
	ID          uint32        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"size:150;not null" json:"name"`
	Description string        `gorm:"type:text;not null" json:"description"`
	CoordsLat   string        `gorm:"size:20;not null" json:"coordsLat"`
	CoordsLng   string        `gorm:"size:20;not null" json:"coordsLng"`
	Type        ChallengeType `gorm:"size:20;not null" json:"type"`
	Points      int           `gorm:"not null;default:10" json:"points"`
}

func (Challenge) TableName() string {
	return "challenges"
}
