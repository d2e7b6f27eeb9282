package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Number int `gorm:"not null;index" json:"number"`

	ClientID uint   `gorm:"not null;index" json:"client"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MasterID uint   `gorm:"not null;index" json:"master"`
	Master   Master `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
