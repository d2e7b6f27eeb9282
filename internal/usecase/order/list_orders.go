package order

import (
	"context"

	domain "github.com/BruksfildServices01/remonte/internal/domain/order"
	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

func (uc *ListOrders) Execute(
	ctx context.Context,
	params domain.Params,
	page store.Page,
) ([]models.Order, int64, error) {

	f, err := domain.ParseFilter(params)
	if err != nil {
		return nil, 0, err
	}

	return uc.repo.Filter(ctx, f, page)
}
