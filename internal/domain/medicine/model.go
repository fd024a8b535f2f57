package medicine

import (
	"math"
	"strings"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/validate"
)

// Medicine is a line item of an order. OrderID is fixed at creation.
type Medicine struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Quantity        int             `json:"quantity"`
	Price           float64         `json:"price"`
	InventoryStatus InventoryStatus `json:"inventory_status"`
	OrderID         int64           `json:"order_id"`
}

// CreateRequest is the body of POST /medicines. A nil InventoryStatus
// defaults to added.
type CreateRequest struct {
	Name            string   `json:"name"`
	Quantity        *int     `json:"quantity"`
	Price           *float64 `json:"price"`
	InventoryStatus *string  `json:"inventory_status"`
	OrderID         int64    `json:"order_id"`
}

// Medicine validates the request and builds the record to insert.
func (r CreateRequest) Medicine() (*Medicine, error) {
	name := strings.TrimSpace(r.Name)
	if err := validate.Text("name", name, 100); err != nil {
		return nil, err
	}
	if r.Quantity == nil {
		return nil, apperr.Validation("quantity is required")
	}
	if *r.Quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}
	if *r.Quantity > math.MaxInt32 {
		return nil, apperr.Validation("quantity must be at most %d", math.MaxInt32)
	}
	if r.Price == nil {
		return nil, apperr.Validation("price is required")
	}
	if err := validate.NonNegative("price", *r.Price); err != nil {
		return nil, err
	}
	if err := validate.PositiveID("order_id", r.OrderID); err != nil {
		return nil, err
	}

	status := StatusAdded
	if r.InventoryStatus != nil {
		st, err := ParseInventoryStatus(*r.InventoryStatus)
		if err != nil {
			return nil, err
		}
		status = st
	}

	return &Medicine{
		Name:            name,
		Quantity:        *r.Quantity,
		Price:           *r.Price,
		InventoryStatus: status,
		OrderID:         r.OrderID,
	}, nil
}

// StatusUpdate is the body of PUT /medicines/:id.
type StatusUpdate struct {
	InventoryStatus *string `json:"inventory_status"`
}

// Filter restricts List. A nil field matches every medicine.
type Filter struct {
	OrderID *int64
}

func (f Filter) Matches(m *Medicine) bool {
	return f.OrderID == nil || m.OrderID == *f.OrderID
}
