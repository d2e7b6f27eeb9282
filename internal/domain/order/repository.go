package order

import (
	"context"

	"github.com/BruksfildServices01/remonte/internal/domain/store"
	"github.com/BruksfildServices01/remonte/internal/models"
)

type Repository interface {
	store.Repository[models.Order]

	Filter(ctx context.Context, f Filter, page store.Page) ([]models.Order, int64, error)

	// UpdatePrice locks the order row and applies mutate to its current price.
	// A mutate error aborts the transaction and leaves the order unchanged.
	UpdatePrice(
		ctx context.Context,
		id uint,
		mutate func(current *models.Order) error,
	) (*models.Order, error)
}
