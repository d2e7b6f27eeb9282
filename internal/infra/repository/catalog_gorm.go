package repository

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/remonte/internal/models"
)

func NewSpecialityRepository(db *gorm.DB) *CRUDRepository[models.Speciality] {
	return &CRUDRepository[models.Speciality]{
		db:     db,
		entity: "speciality",
		idOf:   func(s *models.Speciality) uint { return s.ID },
		guard: func(tx *gorm.DB, s *models.Speciality) error {
			return assertUnique(tx, &models.Speciality{}, "speciality", "name", s.Name, s.ID)
		},
		cascade: func(tx *gorm.DB, id uint) error {
			var masterIDs []uint
			if err := tx.Model(&models.Master{}).
				Where("speciality_id = ?", id).
				Pluck("id", &masterIDs).Error; err != nil {
				return err
			}

			if len(masterIDs) == 0 {
				return nil
			}
			if err := deleteMasterDependents(tx, masterIDs); err != nil {
				return err
			}
			return tx.Where("id IN ?", masterIDs).Delete(&models.Master{}).Error
		},
	}
}

func NewClientRepository(db *gorm.DB) *CRUDRepository[models.Client] {
	return &CRUDRepository[models.Client]{
		db:     db,
		entity: "client",
		idOf:   func(c *models.Client) uint { return c.ID },
		guard: func(tx *gorm.DB, c *models.Client) error {
			return assertUnique(tx, &models.Client{}, "client", "full_name", c.FullName, c.ID)
		},
		cascade: func(tx *gorm.DB, id uint) error {
			if err := tx.Where("client_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return tx.Where("client_id = ?", id).Delete(&models.Review{}).Error
		},
	}
}

func NewServiceRepository(db *gorm.DB) *CRUDRepository[models.Service] {
	return &CRUDRepository[models.Service]{
		db:     db,
		entity: "service",
		idOf:   func(s *models.Service) uint { return s.ID },
		guard: func(tx *gorm.DB, s *models.Service) error {
			return assertUnique(tx, &models.Service{}, "service", "name", s.Name, s.ID)
		},
	}
}

func NewReviewRepository(db *gorm.DB) *CRUDRepository[models.Review] {
	return &CRUDRepository[models.Review]{
		db:     db,
		entity: "review",
		idOf:   func(r *models.Review) uint { return r.ID },
		guard: func(tx *gorm.DB, r *models.Review) error {
			if err := assertExists(tx, &models.Client{}, r.ClientID, "review", "client"); err != nil {
				return err
			}
			return assertExists(tx, &models.Master{}, r.MasterID, "review", "master")
		},
	}
}

// deleteMasterDependents removes the orders and reviews of the given masters.
func deleteMasterDependents(tx *gorm.DB, masterIDs []uint) error {
	if err := tx.Where("master_id IN ?", masterIDs).Delete(&models.Order{}).Error; err != nil {
		return err
	}
	return tx.Where("master_id IN ?", masterIDs).Delete(&models.Review{}).Error
}
