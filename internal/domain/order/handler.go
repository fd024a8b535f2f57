package order

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
	g.GET("/orders", h.ListOrders)
	g.POST("/orders", h.CreateOrder)
	g.GET("/orders/:id", h.GetOrder)
	g.PUT("/orders/:id", h.UpdateOrder)
	g.DELETE("/orders/:id", h.DeleteOrder)
}

// listItem points the UI at the order's medicines.
type listItem struct {
	*Order
	Actions string `json:"actions"`
}

func (h *Handler) ListOrders(c echo.Context) error {
	customerID, err := api.QueryID(c, "customer_id")
	if err != nil {
		return err
	}
	orders, err := h.svc.ListOrders(c.Request().Context(), Filter{CustomerID: customerID})
	if err != nil {
		return err
	}
	items := make([]listItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, listItem{Order: o, Actions: "View Medicines"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req CreateRequest
	if err := api.Bind(c, &req); err != nil {
		return err
	}
	o, err := h.svc.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return err
	}
	ack := api.Created("Order", o.ID)
	ack.PrescriptionID = o.PrescriptionID
	return c.JSON(http.StatusCreated, ack)
}

func (h *Handler) GetOrder(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	o, err := h.svc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOrder(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	var u Update
	if err := api.Bind(c, &u); err != nil {
		return err
	}
	if _, err := h.svc.UpdateOrder(c.Request().Context(), id, u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Order updated successfully!", ID: id})
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteOrder(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Order deleted successfully!", ID: id})
}
