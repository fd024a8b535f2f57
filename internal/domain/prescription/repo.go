package prescription

import "context"

// Repository persists prescriptions. Create and Delete are only called by the
// order service inside its transactions.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id int64) (*Prescription, error)
	Update(ctx context.Context, p *Prescription) error
	Delete(ctx context.Context, id int64) error
}
