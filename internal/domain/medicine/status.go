package medicine

import "github.com/pharmacy/pharmacy/internal/platform/apperr"

// InventoryStatus is the stock state of a medicine line item. Any status may
// follow any other.
type InventoryStatus string

const (
	StatusAdded   InventoryStatus = "added"
	StatusRemoved InventoryStatus = "removed"
	StatusSold    InventoryStatus = "sold"
	StatusInStock InventoryStatus = "in stock"
	StatusExpired InventoryStatus = "expired"
)

var inventoryStatuses = []InventoryStatus{StatusAdded, StatusRemoved, StatusSold, StatusInStock, StatusExpired}

// AllInventoryStatuses returns every label in display order.
func AllInventoryStatuses() []InventoryStatus {
	out := make([]InventoryStatus, len(inventoryStatuses))
	copy(out, inventoryStatuses)
	return out
}

// ParseInventoryStatus accepts exactly one of the five labels. Input is not
// trimmed or case folded.
func ParseInventoryStatus(s string) (InventoryStatus, error) {
	for _, st := range inventoryStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", apperr.InvalidStatus("invalid inventory_status %q: must be one of added, removed, sold, in stock, expired", s)
}

func (s InventoryStatus) String() string {
	return string(s)
}
