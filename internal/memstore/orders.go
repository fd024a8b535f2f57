package memstore

import (
	"context"

	"github.com/pharmacy/pharmacy/internal/domain/order"
	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

type orderRepo struct {
	s *Store
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.customers[o.CustomerID]; !ok {
		return apperr.Conflict("order references a record that does not exist")
	}
	if _, ok := r.s.data.prescriptions[o.PrescriptionID]; !ok {
		return apperr.Conflict("order references a record that does not exist")
	}
	for _, existing := range r.s.data.orders {
		if existing.PrescriptionID == o.PrescriptionID {
			return apperr.Conflict("order conflicts with an existing record (pharmacy_order_prescription_key)")
		}
	}
	if o.Total < 0 {
		return apperr.Conflict("order violates constraint pharmacy_order_total_check")
	}
	o.ID = r.s.nextOrderID
	r.s.nextOrderID++
	r.s.data.orders[o.ID] = *o
	return nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	defer r.s.rlock(ctx)()
	o, ok := r.s.data.orders[id]
	if !ok {
		return nil, apperr.NotFound("order %d not found", id)
	}
	return &o, nil
}

// Update writes date, total and status only.
func (r *orderRepo) Update(ctx context.Context, o *order.Order) error {
	defer r.s.wlock(ctx)()
	stored, ok := r.s.data.orders[o.ID]
	if !ok {
		return apperr.NotFound("order %d not found", o.ID)
	}
	if o.Total < 0 {
		return apperr.Conflict("order %d violates constraint pharmacy_order_total_check", o.ID)
	}
	stored.Date, stored.Total, stored.Status = o.Date, o.Total, o.Status
	r.s.data.orders[o.ID] = stored
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.orders[id]; !ok {
		return apperr.NotFound("order %d not found", id)
	}
	if r.hasMedicines(id) {
		return apperr.Conflict("order %d is still referenced by other records", id)
	}
	delete(r.s.data.orders, id)
	return nil
}

func (r *orderRepo) List(ctx context.Context, f order.Filter) ([]*order.Order, error) {
	defer r.s.rlock(ctx)()
	out := make([]*order.Order, 0)
	for _, id := range sortedIDs(r.s.data.orders) {
		o := r.s.data.orders[id]
		if f.Matches(&o) {
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *orderRepo) Exists(ctx context.Context, id int64) (bool, error) {
	defer r.s.rlock(ctx)()
	_, ok := r.s.data.orders[id]
	return ok, nil
}

func (r *orderRepo) HasMedicines(ctx context.Context, id int64) (bool, error) {
	defer r.s.rlock(ctx)()
	return r.hasMedicines(id), nil
}

func (r *orderRepo) hasMedicines(id int64) bool {
	for _, m := range r.s.data.medicines {
		if m.OrderID == id {
			return true
		}
	}
	return false
}
