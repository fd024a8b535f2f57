package order

import "context"

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f Filter) ([]*Order, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// HasMedicines reports whether any medicine line item references the order.
	HasMedicines(ctx context.Context, id int64) (bool, error)
}

// CustomerChecker confirms an order's owner exists before the transaction
// starts.
type CustomerChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
