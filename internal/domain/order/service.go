package order

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pharmacy/pharmacy/internal/domain/prescription"
	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

// Service owns the order lifecycle. Orders and their prescriptions are
// always written together inside one transaction.
type Service struct {
	orders        Repository
	prescriptions prescription.Repository
	customers     CustomerChecker
	tx            db.TxRunner
	logger        zerolog.Logger
}

func NewService(orders Repository, prescriptions prescription.Repository, customers CustomerChecker, tx db.TxRunner, logger zerolog.Logger) *Service {
	return &Service{
		orders:        orders,
		prescriptions: prescriptions,
		customers:     customers,
		tx:            tx,
		logger:        logger.With().Str("component", "order").Logger(),
	}
}

// CreateOrder inserts a prescription and the order referencing it. Either
// both rows persist or neither does.
func (s *Service) CreateOrder(ctx context.Context, req CreateRequest) (*Order, error) {
	req.normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("check customer %d: %w", req.CustomerID, err)
	}
	if !ok {
		return nil, apperr.NotFound("customer %d not found", req.CustomerID)
	}

	o := &Order{
		CustomerID: req.CustomerID,
		Date:       req.Date,
		Total:      *req.Total,
		Status:     req.Status,
	}
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		p := &prescription.Prescription{DoctorName: req.DoctorName, DatePrescribed: req.DatePrescribed}
		if err := s.prescriptions.Create(ctx, p); err != nil {
			return err
		}
		o.PrescriptionID = p.ID
		return s.orders.Create(ctx, o)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info().
		Int64("order_id", o.ID).
		Int64("customer_id", o.CustomerID).
		Int64("prescription_id", o.PrescriptionID).
		Msg("order created")
	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, f Filter) ([]*Order, error) {
	return s.orders.List(ctx, f)
}

// UpdateOrder merges date, total and status into the stored order.
func (s *Service) UpdateOrder(ctx context.Context, id int64, u Update) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return o, nil
	}

	u.Apply(o)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	return o, nil
}

// DeleteOrder removes an order and its prescription. Orders that still have
// medicines are rejected.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	var prescriptionID int64
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		has, err := s.orders.HasMedicines(ctx, id)
		if err != nil {
			return err
		}
		if has {
			return apperr.Conflict("order %d still has medicines", id)
		}
		if err := s.orders.Delete(ctx, id); err != nil {
			return err
		}
		prescriptionID = o.PrescriptionID
		return s.prescriptions.Delete(ctx, o.PrescriptionID)
	})
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	s.logger.Info().Int64("order_id", id).Int64("prescription_id", prescriptionID).Msg("order deleted")
	return nil
}
