package order

import (
	"strings"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/internal/platform/validate"
)

// Order maps to the pharmacy_order table. CustomerID and PrescriptionID are
// fixed at creation.
type Order struct {
	ID             int64   `db:"id" json:"id"`
	CustomerID     int64   `db:"customer_id" json:"customer_id"`
	PrescriptionID int64   `db:"prescription_id" json:"prescription_id"`
	Date           string  `db:"date" json:"date"`
	Total          float64 `db:"total" json:"total"`
	Status         string  `db:"status" json:"status"`
}

// CreateRequest carries everything needed to create an order together with
// its prescription.
type CreateRequest struct {
	CustomerID     int64    `json:"customer_id"`
	DoctorName     string   `json:"doctor_name"`
	DatePrescribed string   `json:"date_prescribed"`
	Date           string   `json:"date"`
	Total          *float64 `json:"total"`
	Status         string   `json:"status"`
}

func (r *CreateRequest) normalize() {
	r.DoctorName = strings.TrimSpace(r.DoctorName)
	r.DatePrescribed = strings.TrimSpace(r.DatePrescribed)
	r.Date = strings.TrimSpace(r.Date)
	r.Status = strings.TrimSpace(r.Status)
}

func (r *CreateRequest) Validate() error {
	if err := validate.PositiveID("customer_id", r.CustomerID); err != nil {
		return err
	}
	if r.Total == nil {
		return apperr.Validation("total is required")
	}
	return validate.First(
		validate.Text("doctor_name", r.DoctorName, 100),
		validate.Text("date_prescribed", r.DatePrescribed, 20),
		validate.Text("date", r.Date, 20),
		validate.NonNegative("total", *r.Total),
		validate.Text("status", r.Status, 20),
	)
}

// Update is a partial order update. Foreign keys cannot be changed.
type Update struct {
	Date   *string  `json:"date"`
	Total  *float64 `json:"total"`
	Status *string  `json:"status"`
}

func (u Update) IsEmpty() bool {
	return u.Date == nil && u.Total == nil && u.Status == nil
}

func (u Update) Apply(o *Order) {
	if u.Date != nil {
		o.Date = strings.TrimSpace(*u.Date)
	}
	if u.Total != nil {
		o.Total = *u.Total
	}
	if u.Status != nil {
		o.Status = strings.TrimSpace(*u.Status)
	}
}

func (o *Order) Validate() error {
	return validate.First(
		validate.Text("date", o.Date, 20),
		validate.NonNegative("total", o.Total),
		validate.Text("status", o.Status, 20),
	)
}

// Filter restricts List. A nil field matches every order.
type Filter struct {
	CustomerID *int64
}

func (f Filter) Matches(o *Order) bool {
	return f.CustomerID == nil || o.CustomerID == *f.CustomerID
}
