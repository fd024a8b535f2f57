package medicine

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
	"github.com/pharmacy/pharmacy/pkg/api"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/medicines", h.ListMedicines)
	g.POST("/medicines", h.CreateMedicine)
	g.GET("/medicines/:id", h.GetMedicine)
	g.PUT("/medicines/:id", h.UpdateInventoryStatus)
	g.DELETE("/medicines/:id", h.DeleteMedicine)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	orderID, err := api.QueryID(c, "order_id")
	if err != nil {
		return err
	}
	medicines, err := h.svc.ListMedicines(c.Request().Context(), Filter{OrderID: orderID})
	if err != nil {
		return err
	}
	if medicines == nil {
		medicines = []*Medicine{}
	}
	return c.JSON(http.StatusOK, medicines)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	var req CreateRequest
	if err := api.Bind(c, &req); err != nil {
		return err
	}
	m, err := h.svc.CreateMedicine(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, api.Created("Medicine", m.ID))
}

func (h *Handler) GetMedicine(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	m, err := h.svc.GetMedicine(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateInventoryStatus(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	var req StatusUpdate
	if err := api.Bind(c, &req); err != nil {
		return err
	}
	if req.InventoryStatus == nil {
		return apperr.Validation("inventory_status is required")
	}
	if _, err := h.svc.SetInventoryStatus(c.Request().Context(), id, *req.InventoryStatus); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Medicine inventory status updated successfully!", ID: id})
}

func (h *Handler) DeleteMedicine(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteMedicine(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Medicine deleted successfully!", ID: id})
}
