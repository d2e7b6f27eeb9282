package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:200;uniqueIndex;not null" json:"full_name"`
	// Email is optional free text; the domain rule lives in the validation layer.
	Email string `gorm:"size:320" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
