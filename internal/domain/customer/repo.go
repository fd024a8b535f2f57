package customer

import "context"

// Repository defines the persistence interface for customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
