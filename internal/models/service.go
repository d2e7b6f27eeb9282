package models

// Service is a catalogue entry of work offered on the marketplace.
type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
