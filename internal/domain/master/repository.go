package master

import (
	"context"

	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type SpecialityCount struct {
	Speciality string `json:"speciality"`
	Count      int64  `json:"count"`
}

type Statistics struct {
	Total        int64             `json:"total"`
	BySpeciality []SpecialityCount `json:"by_speciality"`
}

type Repository interface {
	store.Repository[models.Master]

	Match(ctx context.Context, where Predicate) ([]models.Master, error)
	Statistics(ctx context.Context) (*Statistics, error)
}
