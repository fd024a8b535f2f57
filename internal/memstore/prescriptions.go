package memstore

import (
	"context"

	"github.com/pharmacy/pharmacy/internal/domain/prescription"
	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

type prescriptionRepo struct {
	s *Store
}

func (r *prescriptionRepo) Create(ctx context.Context, p *prescription.Prescription) error {
	defer r.s.wlock(ctx)()
	p.ID = r.s.nextPrescriptionID
	r.s.nextPrescriptionID++
	r.s.data.prescriptions[p.ID] = *p
	return nil
}

func (r *prescriptionRepo) GetByID(ctx context.Context, id int64) (*prescription.Prescription, error) {
	defer r.s.rlock(ctx)()
	p, ok := r.s.data.prescriptions[id]
	if !ok {
		return nil, apperr.NotFound("prescription %d not found", id)
	}
	return &p, nil
}

func (r *prescriptionRepo) Update(ctx context.Context, p *prescription.Prescription) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.prescriptions[p.ID]; !ok {
		return apperr.NotFound("prescription %d not found", p.ID)
	}
	r.s.data.prescriptions[p.ID] = *p
	return nil
}

func (r *prescriptionRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.wlock(ctx)()
	if _, ok := r.s.data.prescriptions[id]; !ok {
		return apperr.NotFound("prescription %d not found", id)
	}
	for _, o := range r.s.data.orders {
		if o.PrescriptionID == id {
			return apperr.Conflict("prescription %d is still referenced by other records", id)
		}
	}
	delete(r.s.data.prescriptions, id)
	return nil
}
