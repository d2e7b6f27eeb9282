package store

import "context"

// Page is an optional limit/offset window. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

// Repository is the persistence contract shared by every marketplace entity.
//
// Writes report httperr.ConstraintError for duplicate unique fields and missing
// references, and httperr.NotFoundError for unknown ids. Modify is the
// only update path: the row is locked while mutate runs. Delete removes
// dependents in the same transaction.
type Repository[M any] interface {
	Create(ctx context.Context, m *M) error
	Get(ctx context.Context, id uint) (*M, error)
	Modify(ctx context.Context, id uint, mutate func(current *M) error) (*M, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page Page) ([]M, int64, error)
}
