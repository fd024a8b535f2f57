// Package memstore keeps every pharmacy table in process memory. It backs
// `serve --store=memory` and the end-to-end API tests, and enforces the same
// keys and constraints as the PostgreSQL schema.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/pharmacy/pharmacy/internal/domain/customer"
	"github.com/pharmacy/pharmacy/internal/domain/medicine"
	"github.com/pharmacy/pharmacy/internal/domain/order"
	"github.com/pharmacy/pharmacy/internal/domain/prescription"
	"github.com/pharmacy/pharmacy/internal/platform/db"
)

type tables struct {
	customers     map[int64]customer.Customer
	prescriptions map[int64]prescription.Prescription
	orders        map[int64]order.Order
	medicines     map[int64]medicine.Medicine
}

func (t tables) clone() tables {
	return tables{
		customers:     cloneMap(t.customers),
		prescriptions: cloneMap(t.prescriptions),
		orders:        cloneMap(t.orders),
		medicines:     cloneMap(t.medicines),
	}
}

// Store is safe for concurrent use. Transactions hold the write lock for
// their whole duration.
type Store struct {
	mu   sync.RWMutex
	data tables

	// Sequences survive rollbacks, as PostgreSQL sequences do.
	nextCustomerID     int64
	nextPrescriptionID int64
	nextOrderID        int64
	nextMedicineID     int64
}

func New() *Store {
	return &Store{
		data: tables{
			customers:     make(map[int64]customer.Customer),
			prescriptions: make(map[int64]prescription.Prescription),
			orders:        make(map[int64]order.Order),
			medicines:     make(map[int64]medicine.Medicine),
		},
		nextCustomerID:     1,
		nextPrescriptionID: 1,
		nextOrderID:        1,
		nextMedicineID:     1,
	}
}

func (s *Store) Customers() customer.Repository         { return &customerRepo{s} }
func (s *Store) Prescriptions() prescription.Repository { return &prescriptionRepo{s} }
func (s *Store) Orders() order.Repository               { return &orderRepo{s} }
func (s *Store) Medicines() medicine.Repository         { return &medicineRepo{s} }

// TxRunner returns a runner whose transactions span all four repositories.
func (s *Store) TxRunner() db.TxRunner { return &txRunner{s} }

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) wlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type txRunner struct {
	store *Store
}

// WithTx restores the tables to their state before fn when fn fails or
// panics. A nested call joins the outer transaction.
func (r *txRunner) WithTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := r.store
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	committed := false
	defer func() {
		if !committed {
			s.data = snapshot
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
