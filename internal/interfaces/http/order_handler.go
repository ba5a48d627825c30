package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// OrderHandler vistas de solo lectura sobre pedidos.
type OrderHandler struct {
	repo repository.OrderRepository
}

// NewOrderHandler construye el handler.
func NewOrderHandler(repo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{repo: repo}
}

// List GET /orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "order_list", fiber.Map{"Orders": orders})
}

// Detail GET /orders/:id
func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/orders")
	}
	view, err := h.repo.GetDetail(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/orders")
	}
	if view == nil {
		SetFlash(c, "warning", "Order not found!")
		return c.Redirect("/orders")
	}
	return render(c, "order_detail", fiber.Map{
		"Order":     view.Order,
		"Items":     view.Items,
		"Shipments": view.Shipments,
	})
}
