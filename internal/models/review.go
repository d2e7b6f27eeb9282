package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MasterID uint   `gorm:"not null;index" json:"master"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  float64 `gorm:"type:decimal(2,1)" json:"rating"`
	Comment string  `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
