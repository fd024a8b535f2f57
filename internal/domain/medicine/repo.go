package medicine

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id int64) (*Medicine, error)
	// UpdateStatus stores status and returns the updated record.
	UpdateStatus(ctx context.Context, id int64, status InventoryStatus) (*Medicine, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f Filter) ([]*Medicine, error)
}

// OrderChecker confirms the owning order exists before a medicine is added.
type OrderChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
