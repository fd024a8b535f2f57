package customer

import (
	"strings"

	"github.com/pharmacy/pharmacy/internal/platform/validate"
)

// Customer maps to the customer table.
type Customer struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
}

// Update is a partial customer update. A nil field keeps the stored value.
type Update struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil
}

// Apply copies the supplied fields onto c.
func (u Update) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
}

func (c *Customer) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
}

// Validate checks required fields against the column limits.
func (c *Customer) Validate() error {
	return validate.First(
		validate.Text("name", c.Name, 100),
		validate.Text("email", c.Email, 100),
		validate.Text("phone", c.Phone, 20),
	)
}
