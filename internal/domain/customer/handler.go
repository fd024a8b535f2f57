package customer

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmacy/pharmacy/pkg/api"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/customers", h.ListCustomers)
	g.POST("/customers", h.CreateCustomer)
	g.GET("/customers/:id", h.GetCustomer)
	g.PUT("/customers/:id", h.UpdateCustomer)
	g.DELETE("/customers/:id", h.DeleteCustomer)
}

// listItem points the UI at the customer's orders.
type listItem struct {
	*Customer
	Actions string `json:"actions"`
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (h *Handler) ListCustomers(c echo.Context) error {
	customers, err := h.svc.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	items := make([]listItem, 0, len(customers))
	for _, cust := range customers {
		items = append(items, listItem{Customer: cust, Actions: "View Orders"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateCustomer(c echo.Context) error {
	var req createRequest
	if err := api.Bind(c, &req); err != nil {
		return err
	}
	cust := &Customer{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := h.svc.CreateCustomer(c.Request().Context(), cust); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, api.Created("Customer", cust.ID))
}

func (h *Handler) GetCustomer(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	cust, err := h.svc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cust)
}

func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	var u Update
	if err := api.Bind(c, &u); err != nil {
		return err
	}
	if _, err := h.svc.UpdateCustomer(c.Request().Context(), id, u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Customer updated successfully!", ID: id})
}

func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteCustomer(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Customer deleted successfully!", ID: id})
}
