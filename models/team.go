package models

type Team struct {
	ID      uint32 `gorm:"primarykey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Code    string `gorm:"size:20;unique;not null" json:"code"`
	Captain string `gorm:"size:100;not null" json:"captain"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:30;not null" json:"phone"`
	Score   int    `gorm:"not null;default:0" json:"score"`
	Logo    string `gorm:"size:2048;default:''" json:"logo"`
}

func (Team) TableName() string {
	return "teams"
}
