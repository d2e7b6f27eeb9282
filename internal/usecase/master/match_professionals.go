package master

import (
	"context"

	domain "github.com/BruksfildServices01/remonte/internal/domain/master"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type MatchProfessionals struct {
	repo    domain.Repository
	queries []domain.Query
}

func NewMatchProfessionals(repo domain.Repository) *MatchProfessionals {
	return &MatchProfessionals{
		repo:    repo,
		queries: domain.ProfessionalQueries(),
	}
}

// Execute runs every professional query and returns the sets keyed by name.
// Empty sets are present as empty lists.
func (uc *MatchProfessionals) Execute(ctx context.Context) (map[string][]models.Master, error) {
	out := make(map[string][]models.Master, len(uc.queries))

	for _, q := range uc.queries {
		masters, err := uc.repo.Match(ctx, q.Where)
		if err != nil {
			return nil, err
		}
		if masters == nil {
			masters = []models.Master{}
		}
		out[q.Key] = masters
	}

	return out, nil
}
