package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/httperr"
)

// CRUDRepository is the gorm implementation of store.Repository for one entity.
type CRUDRepository[M any] struct {
	db     *gorm.DB
	entity string

	idOf func(m *M) uint

	// guard runs inside the write transaction before insert/update.
	guard func(tx *gorm.DB, m *M) error

	// cascade removes dependents inside the delete transaction.
	cascade func(tx *gorm.DB, id uint) error
}

func (r *CRUDRepository[M]) Create(ctx context.Context, m *M) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.guard != nil {
			if err := r.guard(tx, m); err != nil {
				return err
			}
		}
		return r.translate(tx.Omit(clause.Associations).Create(m).Error)
	})
}

func (r *CRUDRepository[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.notFound(err, id)
	}
	return &m, nil
}

// Modify locks the row, applies mutate to its current state and writes it back
// in the same transaction. A mutate or guard error leaves the row unchanged.
func (r *CRUDRepository[M]) Modify(
	ctx context.Context,
	id uint,
	mutate func(current *M) error,
) (*M, error) {

	var updated M

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return r.notFound(err, id)
		}

		if err := mutate(&m); err != nil {
			return err
		}

		if r.guard != nil {
			if err := r.guard(tx, &m); err != nil {
				return err
			}
		}
		if err := r.translate(tx.Omit(clause.Associations).Save(&m).Error); err != nil {
			return err
		}

		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *CRUDRepository[M]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m M
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return r.notFound(err, id)
		}

		if r.cascade != nil {
			if err := r.cascade(tx, id); err != nil {
				return err
			}
		}

		return tx.Delete(&m).Error
	})
}

func (r *CRUDRepository[M]) List(ctx context.Context, page store.Page) ([]M, int64, error) {
	return paginate[M](r.db.WithContext(ctx).Model(new(M)), page)
}

func (r *CRUDRepository[M]) notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(r.entity, id)
	}
	return err
}

// translate maps driver constraint errors that slipped past the guard.
func (r *CRUDRepository[M]) translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return httperr.ErrConstraint(r.entity, "unique", "record with this value already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return httperr.ErrConstraint(r.entity, "reference", "referenced record does not exist")
	default:
		return err
	}
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func paginate[M any](q *gorm.DB, page store.Page) ([]M, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := q.Order("id ASC")
	if page.Limit > 0 {
		list = list.Limit(page.Limit)
	}
	if page.Offset > 0 {
		list = list.Offset(page.Offset)
	}

	var out []M
	if err := list.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func assertUnique(
	tx *gorm.DB,
	model any,
	entity string,
	column string,
	value string,
	selfID uint,
) error {
	var count int64
	if err := tx.Model(model).
		Where(column+" = ? AND id <> ?", value, selfID).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrConstraint(entity, column, entity+" with this "+column+" already exists")
	}
	return nil
}

func assertExists(tx *gorm.DB, model any, id uint, entity, field string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return httperr.ErrConstraint(entity, field, "referenced record does not exist")
	}
	return nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike quotes LIKE wildcards; queries use ESCAPE '!'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
