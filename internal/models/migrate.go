package models

import "gorm.io/gorm"

// AutoMigrate creates or updates every table of the marketplace.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Speciality{},
		&Client{},
		&Master{},
		&Service{},
		&Order{},
		&Review{},
		&AuditLog{},
	)
}
