package memstore

import (
	"context"

	"github.com/pharmacy/pharmacy/internal/domain/customer"
	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

type customerRepo struct {
	s *Store
}

func (r *customerRepo) emailTaken(email string, except int64) bool {
	for id, c := range r.s.data.customers {
		if id != except && c.Email == email {
			return true
		}
	}
	return false
}

func (r *customerRepo) Create(ctx context.Context, c *customer.Customer) error {
	defer r.s.wlock(ctx)()
	if r.emailTaken(c.Email, 0) {
		return apperr.Conflict("email %q is already registered", c.Email)
	}
	c.ID = r.s.nextCustomerID
	r.s.nextCustomerID++
	r.s.data.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	defer r.s.rlock(ctx)()
	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, apperr.NotFound("customer %d not found", id)
	}
	return &c, nil
}

func (r *customerRepo) Update(ctx context.Context, c *customer.Customer) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.customers[c.ID]; !ok {
		return apperr.NotFound("customer %d not found", c.ID)
	}
	if r.emailTaken(c.Email, c.ID) {
		return apperr.Conflict("email %q is already registered", c.Email)
	}
	r.s.data.customers[c.ID] = *c
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.customers[id]; !ok {
		return apperr.NotFound("customer %d not found", id)
	}
	for _, o := range r.s.data.orders {
		if o.CustomerID == id {
			return apperr.Conflict("customer %d is still referenced by other records", id)
		}
	}
	delete(r.s.data.customers, id)
	return nil
}

func (r *customerRepo) List(ctx context.Context) ([]*customer.Customer, error) {
	defer r.s.rlock(ctx)()
	ids := sortedIDs(r.s.data.customers)
	out := make([]*customer.Customer, 0, len(ids))
	for _, id := range ids {
		c := r.s.data.customers[id]
		out = append(out, &c)
	}
	return out, nil
}

func (r *customerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	defer r.s.rlock(ctx)()
	_, ok := r.s.data.customers[id]
	return ok, nil
}
