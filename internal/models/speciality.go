package models

// Speciality is a trade category a master works in.
type Speciality struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:200;uniqueIndex;not null" json:"name"`
}
