package server

import (
	"github.com/pharmacy/pharmacy/internal/domain/medicine"
	"github.com/pharmacy/pharmacy/internal/platform/openapi"
)

func prop(typ string) map[string]any {
	return map[string]any{"type": typ}
}

func idProp() map[string]any {
	return map[string]any{"type": "integer", "format": "int64"}
}

func inventoryStatusProp() map[string]any {
	labels := make([]string, 0, 5)
	for _, st := range medicine.AllInventoryStatuses() {
		labels = append(labels, st.String())
	}
	return map[string]any{"type": "string", "enum": labels, "default": medicine.StatusAdded.String()}
}

func apiResources() []openapi.Resource {
	return []openapi.Resource{
		{
			Name: "Customer",
			Path: "/customers",
			Properties: map[string]any{
				"id":    idProp(),
				"name":  prop("string"),
				"email": prop("string"),
				"phone": prop("string"),
			},
			Required: []string{"name", "email", "phone"},
		},
		{
			Name: "Order",
			Path: "/orders",
			Properties: map[string]any{
				"id":              idProp(),
				"customer_id":     idProp(),
				"prescription_id": idProp(),
				"doctor_name":     prop("string"),
				"date_prescribed": prop("string"),
				"date":            prop("string"),
				"total":           map[string]any{"type": "number", "minimum": 0},
				"status":          prop("string"),
			},
			Required: []string{"customer_id", "doctor_name", "date_prescribed", "date", "total", "status"},
			Filter:   "customer_id",
		},
		{
			Name: "Medicine",
			Path: "/medicines",
			Properties: map[string]any{
				"id":               idProp(),
				"name":             prop("string"),
				"quantity":         map[string]any{"type": "integer", "minimum": 1},
				"price":            map[string]any{"type": "number", "minimum": 0},
				"inventory_status": inventoryStatusProp(),
				"order_id":         idProp(),
			},
			Required: []string{"name", "quantity", "price", "order_id"},
			Filter:   "order_id",
		},
		{
			Name: "Prescription",
			Path: "/prescriptions",
			Properties: map[string]any{
				"id":              idProp(),
				"doctor_name":     prop("string"),
				"date_prescribed": prop("string"),
			},
		},
	}
}
