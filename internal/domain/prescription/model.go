package prescription

import (
	"strings"

	"github.com/pharmacy/pharmacy/internal/platform/validate"
)

// Prescription is owned by exactly one order and is only created alongside it.
type Prescription struct {
	ID             int64  `db:"id" json:"id"`
	DoctorName     string `db:"doctor_name" json:"doctor_name"`
	DatePrescribed string `db:"date_prescribed" json:"date_prescribed"`
}

// Update is a partial prescription update. A nil field keeps the stored value.
type Update struct {
	DoctorName     *string `json:"doctor_name"`
	DatePrescribed *string `json:"date_prescribed"`
}

func (u Update) IsEmpty() bool {
	return u.DoctorName == nil && u.DatePrescribed == nil
}

func (u Update) Apply(p *Prescription) {
	if u.DoctorName != nil {
		p.DoctorName = *u.DoctorName
	}
	if u.DatePrescribed != nil {
		p.DatePrescribed = *u.DatePrescribed
	}
}

// Normalize trims surrounding whitespace from the text fields.
func (p *Prescription) Normalize() {
	p.DoctorName = strings.TrimSpace(p.DoctorName)
	p.DatePrescribed = strings.TrimSpace(p.DatePrescribed)
}

func (p *Prescription) Validate() error {
	return validate.First(
		validate.Text("doctor_name", p.DoctorName, 100),
		validate.Text("date_prescribed", p.DatePrescribed, 20),
	)
}
