package master

import (
	"context"

	domain "github.com/BruksfildServices01/remonte/internal/domain/master"
)

type Statistics struct {
	repo domain.Repository
}

func NewStatistics(repo domain.Repository) *Statistics {
	return &Statistics{repo: repo}
}

func (uc *Statistics) Execute(ctx context.Context) (*domain.Statistics, error) {
	stats, err := uc.repo.Statistics(ctx)
	if err != nil {
		return nil, err
	}
	if stats.BySpeciality == nil {
		stats.BySpeciality = []domain.SpecialityCount{}
	}
	return stats, nil
}
