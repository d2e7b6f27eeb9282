package repository

import (
	"context"
	"errors"
	"math"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/remonte/internal/domain/order"
	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type OrderGormRepository struct {
	*CRUDRepository[models.Order]
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{
		CRUDRepository: &CRUDRepository[models.Order]{
			db:     db,
			entity: "order",
			idOf:   func(o *models.Order) uint { return o.ID },
			guard: func(tx *gorm.DB, o *models.Order) error {
				if err := assertExists(tx, &models.Client{}, o.ClientID, "order", "client"); err != nil {
					return err
				}
				return assertExists(tx, &models.Master{}, o.MasterID, "order", "master")
			},
		},
		db: db,
	}
}

// --------------------------------------------------
// Filtering
// --------------------------------------------------

func (r *OrderGormRepository) Filter(
	ctx context.Context,
	f domain.Filter,
	page store.Page,
) ([]models.Order, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Order{})

	if f.MinPrice != nil {
		q = q.Where("price > ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price < ?", *f.MaxPrice)
	}
	if f.Number != nil {
		q = q.Where("number = ?", *f.Number)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.MasterID != nil {
		q = q.Where("master_id = ?", *f.MasterID)
	}

	for _, term := range f.Search {
		sql, args := searchClause(term)
		q = q.Where(sql, args...)
	}

	return paginate[models.Order](q, page)
}

// searchClause matches term as a substring of the number or the price text.
// The text form of a decimal differs between drivers, so a numeric term
// also matches a price equal to its value.
func searchClause(term string) (string, []any) {
	like := "%" + escapeLike(term) + "%"
	sql := "(CAST(number AS TEXT) LIKE ? ESCAPE '!' OR CAST(price AS TEXT) LIKE ? ESCAPE '!'"
	args := []any{like, like}

	if v, err := strconv.ParseFloat(term, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		sql += " OR price = ?"
		args = append(args, v)
	}
	return sql + ")", args
}

// --------------------------------------------------
// Price mutation
// --------------------------------------------------

func (r *OrderGormRepository) UpdatePrice(
	ctx context.Context,
	id uint,
	mutate func(current *models.Order) error,
) (*models.Order, error) {

	var updated models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, id).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("order", id)
			}
			return err
		}

		if err := mutate(&o); err != nil {
			return err
		}

		if err := tx.Model(&o).Update("price", o.Price).Error; err != nil {
			return err
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
