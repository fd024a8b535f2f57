package customer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type Service struct {
	customers Repository
	logger    zerolog.Logger
}

func NewService(customers Repository, logger zerolog.Logger) *Service {
	return &Service{customers: customers, logger: logger.With().Str("component", "customer").Logger()}
}

func (s *Service) CreateCustomer(ctx context.Context, c *Customer) error {
	c.normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	s.logger.Info().Int64("customer_id", c.ID).Msg("customer created")
	return nil
}

func (s *Service) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.customers.List(ctx)
}

// UpdateCustomer merges the supplied fields into the stored customer.
func (s *Service) UpdateCustomer(ctx context.Context, id int64, u Update) (*Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return c, nil
	}

	u.Apply(c)
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	return c, nil
}

// DeleteCustomer removes a customer. Customers that still own orders are
// rejected by the order foreign key.
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return nil
}
