package models

type Master struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:200;uniqueIndex;not null" json:"full_name"`

	SpecialityID uint       `gorm:"not null;index" json:"speciality"`
	Speciality   Speciality `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Description string `gorm:"size:300" json:"description"`

	// Rating is nominally 1..5; storage does not enforce it.
	Rating float64 `gorm:"type:decimal(3,1);not null" json:"rating"`

	Image string `gorm:"size:512" json:"image"`
}
