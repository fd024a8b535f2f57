package prescription

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pharmacy/pharmacy/pkg/api"
)

// Handler exposes read and update access. Prescriptions are created and
// deleted through their order.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/prescriptions/:id", h.GetPrescription)
	g.PUT("/prescriptions/:id", h.UpdatePrescription)
}

func (h *Handler) GetPrescription(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetPrescription(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePrescription(c echo.Context) error {
	id, err := api.PathID(c)
	if err != nil {
		return err
	}
	var u Update
	if err := api.Bind(c, &u); err != nil {
		return err
	}
	if _, err := h.svc.UpdatePrescription(c.Request().Context(), id, u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.Ack{Message: "Prescription updated successfully!", ID: id})
}
