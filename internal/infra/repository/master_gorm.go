package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/remonte/internal/domain/master"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type MasterGormRepository struct {
	*CRUDRepository[models.Master]
	db *gorm.DB
}

func NewMasterGormRepository(db *gorm.DB) *MasterGormRepository {
	return &MasterGormRepository{
		CRUDRepository: &CRUDRepository[models.Master]{
			db:     db,
			entity: "master",
			idOf:   func(m *models.Master) uint { return m.ID },
			guard: func(tx *gorm.DB, m *models.Master) error {
				if err := assertUnique(tx, &models.Master{}, "master", "full_name", m.FullName, m.ID); err != nil {
					return err
				}
				return assertExists(tx, &models.Speciality{}, m.SpecialityID, "master", "speciality")
			},
			cascade: func(tx *gorm.DB, id uint) error {
				return deleteMasterDependents(tx, []uint{id})
			},
		},
		db: db,
	}
}

// --------------------------------------------------
// Matching
// --------------------------------------------------

func (r *MasterGormRepository) Match(
	ctx context.Context,
	where domain.Predicate,
) ([]models.Master, error) {

	sql, args, err := compilePredicate(where)
	if err != nil {
		return nil, err
	}

	var masters []models.Master
	if err := r.db.WithContext(ctx).
		Where(sql, args...).
		Order("masters.id ASC").
		Find(&masters).Error; err != nil {
		return nil, err
	}

	return masters, nil
}

// compilePredicate renders the matching AST as a WHERE fragment over "masters".
func compilePredicate(p domain.Predicate) (string, []any, error) {
	switch n := p.(type) {
	case domain.SpecialityIs:
		return "masters.speciality_id IN (SELECT id FROM specialities WHERE name = ?)",
			[]any{n.Name}, nil

	case domain.RatingAtLeast:
		return "masters.rating >= ?", []any{n.Value}, nil

	case domain.RatingAtMost:
		return "masters.rating <= ?", []any{n.Value}, nil

	case domain.NoOrderFromEmailSuffix:
		return "NOT EXISTS (" +
				"SELECT 1 FROM orders JOIN clients ON clients.id = orders.client_id " +
				"WHERE orders.master_id = masters.id AND LOWER(clients.email) LIKE ? ESCAPE '!')",
			[]any{"%" + escapeLike(strings.ToLower(n.Suffix))}, nil

	case domain.And:
		return compileGroup([]domain.Predicate(n), " AND ", "1 = 1")

	case domain.Or:
		return compileGroup([]domain.Predicate(n), " OR ", "1 = 0")

	default:
		return "", nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

func compileGroup(children []domain.Predicate, sep, empty string) (string, []any, error) {
	if len(children) == 0 {
		return empty, nil, nil
	}

	parts := make([]string, 0, len(children))
	var args []any

	for _, child := range children {
		sql, childArgs, err := compilePredicate(child)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}

	return "(" + strings.Join(parts, sep) + ")", args, nil
}

// --------------------------------------------------
// Statistics
// --------------------------------------------------

func (r *MasterGormRepository) Statistics(ctx context.Context) (*domain.Statistics, error) {
	db := r.db.WithContext(ctx)

	stats := &domain.Statistics{BySpeciality: []domain.SpecialityCount{}}

	if err := db.Model(&models.Master{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Master{}).
		Select("specialities.name AS speciality, COUNT(masters.id) AS count").
		Joins("JOIN specialities ON specialities.id = masters.speciality_id").
		Group("specialities.name").
		Order("specialities.name ASC").
		Scan(&stats.BySpeciality).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Compile-time check
var _ domain.Repository = (*MasterGormRepository)(nil)
