package medicine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

type Service struct {
	medicines Repository
	orders    OrderChecker
	logger    zerolog.Logger
}

func NewService(medicines Repository, orders OrderChecker, logger zerolog.Logger) *Service {
	return &Service{medicines: medicines, orders: orders, logger: logger.With().Str("component", "medicine").Logger()}
}

// CreateMedicine adds a line item to an existing order.
func (s *Service) CreateMedicine(ctx context.Context, req CreateRequest) (*Medicine, error) {
	m, err := req.Medicine()
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.Exists(ctx, m.OrderID)
	if err != nil {
		return nil, fmt.Errorf("check order %d: %w", m.OrderID, err)
	}
	if !ok {
		return nil, apperr.Conflict("medicine references order %d, which does not exist", m.OrderID)
	}

	if err := s.medicines.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create medicine: %w", err)
	}
	s.logger.Info().
		Int64("medicine_id", m.ID).
		Int64("order_id", m.OrderID).
		Str("inventory_status", m.InventoryStatus.String()).
		Msg("medicine added")
	return m, nil
}

func (s *Service) GetMedicine(ctx context.Context, id int64) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) ListMedicines(ctx context.Context, f Filter) ([]*Medicine, error) {
	return s.medicines.List(ctx, f)
}

// SetInventoryStatus moves a medicine to a new status. The label is parsed
// before the store is touched, so a rejected value leaves the record as is.
func (s *Service) SetInventoryStatus(ctx context.Context, id int64, raw string) (*Medicine, error) {
	status, err := ParseInventoryStatus(raw)
	if err != nil {
		return nil, err
	}
	m, err := s.medicines.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set inventory status of medicine %d: %w", id, err)
	}
	s.logger.Info().Int64("medicine_id", id).Str("inventory_status", status.String()).Msg("inventory status changed")
	return m, nil
}

func (s *Service) DeleteMedicine(ctx context.Context, id int64) error {
	if err := s.medicines.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete medicine %d: %w", id, err)
	}
	return nil
}
