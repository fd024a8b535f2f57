package memstore

import (
	"context"

	"github.com/pharmacy/pharmacy/internal/domain/medicine"
	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

type medicineRepo struct {
	s *Store
}

func checkMedicine(m *medicine.Medicine) error {
	if m.Quantity < 1 {
		return apperr.Conflict("medicine violates constraint medicine_quantity_check")
	}
	if m.Price < 0 {
		return apperr.Conflict("medicine violates constraint medicine_price_check")
	}
	if _, err := medicine.ParseInventoryStatus(string(m.InventoryStatus)); err != nil {
		return apperr.Conflict("medicine violates constraint medicine_inventory_status_check")
	}
	return nil
}

func (r *medicineRepo) Create(ctx context.Context, m *medicine.Medicine) error {
	defer r.s.wlock(ctx)()
	if m.InventoryStatus == "" {
		m.InventoryStatus = medicine.StatusAdded
	}
	if err := checkMedicine(m); err != nil {
		return err
	}
	if _, ok := r.s.data.orders[m.OrderID]; !ok {
		return apperr.Conflict("medicine references a record that does not exist")
	}
	m.ID = r.s.nextMedicineID
	r.s.nextMedicineID++
	r.s.data.medicines[m.ID] = *m
	return nil
}

func (r *medicineRepo) GetByID(ctx context.Context, id int64) (*medicine.Medicine, error) {
	defer r.s.rlock(ctx)()
	m, ok := r.s.data.medicines[id]
	if !ok {
		return nil, apperr.NotFound("medicine %d not found", id)
	}
	return &m, nil
}

func (r *medicineRepo) UpdateStatus(ctx context.Context, id int64, status medicine.InventoryStatus) (*medicine.Medicine, error) {
	defer r.s.wlock(ctx)()
	m, ok := r.s.data.medicines[id]
	if !ok {
		return nil, apperr.NotFound("medicine %d not found", id)
	}
	m.InventoryStatus = status
	if err := checkMedicine(&m); err != nil {
		return nil, err
	}
	r.s.data.medicines[id] = m
	return &m, nil
}

func (r *medicineRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.medicines[id]; !ok {
		return apperr.NotFound("medicine %d not found", id)
	}
	delete(r.s.data.medicines, id)
	return nil
}

func (r *medicineRepo) List(ctx context.Context, f medicine.Filter) ([]*medicine.Medicine, error) {
	defer r.s.rlock(ctx)()
	out := make([]*medicine.Medicine, 0)
	for _, id := range sortedIDs(r.s.data.medicines) {
		m := r.s.data.medicines[id]
		if f.Matches(&m) {
			out = append(out, &m)
		}
	}
	return out, nil
}
