package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// WarehouseHandler pantallas CRUD de almacenes.
type WarehouseHandler struct {
	repo repository.WarehouseRepository
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(repo repository.WarehouseRepository) *WarehouseHandler {
	return &WarehouseHandler{repo: repo}
}

// List GET /warehouses
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	warehouses, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "warehouse_list", fiber.Map{"Warehouses": warehouses})
}

// AddForm GET /warehouses/add
func (h *WarehouseHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "warehouse_form", fiber.Map{"FormTitle": "Add New Warehouse"})
}

// Add POST /warehouses/add
func (h *WarehouseHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "warehouse_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding warehouse: the ID must be a number")
		return c.Redirect("/warehouses/add")
	}
	capacity, err := formInt64(c, "capacity")
	if err != nil {
		SetFlash(c, "danger", "Error adding warehouse: the capacity must be a number")
		return c.Redirect("/warehouses/add")
	}
	warehouse := &entity.Warehouse{
		ID:       id,
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Capacity: capacity,
	}
	if err := h.repo.Create(c.Context(), warehouse); err != nil {
		SetFlash(c, "danger", "Error adding warehouse: "+dbMessage(err))
		return c.Redirect("/warehouses/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Warehouse '%s' added successfully!", warehouse.Name))
	return c.Redirect("/warehouses")
}

// EditForm GET /warehouses/edit/:id
func (h *WarehouseHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/warehouses")
	}
	warehouse, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/warehouses")
	}
	if warehouse == nil {
		SetFlash(c, "warning", "Warehouse not found!")
		return c.Redirect("/warehouses")
	}
	return render(c, "warehouse_form", fiber.Map{"FormTitle": "Edit Warehouse", "Warehouse": warehouse})
}

// Edit POST /warehouses/edit/:id
func (h *WarehouseHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/warehouses")
	}
	capacity, err := formInt64(c, "capacity")
	if err != nil {
		SetFlash(c, "danger", "Error updating warehouse: the capacity must be a number")
		return c.Redirect("/warehouses")
	}
	warehouse := &entity.Warehouse{
		ID:       id,
		Name:     c.FormValue("name"),
		Location: c.FormValue("location"),
		Capacity: capacity,
	}
	if err := h.repo.Update(c.Context(), warehouse); err != nil {
		SetFlash(c, "danger", "Error updating warehouse: "+dbMessage(err))
		return c.Redirect("/warehouses")
	}
	SetFlash(c, "success", fmt.Sprintf("Warehouse '%s' updated successfully!", warehouse.Name))
	return c.Redirect("/warehouses")
}

// Delete POST /warehouses/delete/:id
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/warehouses")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting warehouse. (Check for inventory first)")
		} else {
			SetFlash(c, "danger", "Error deleting warehouse: "+dbMessage(err))
		}
		return c.Redirect("/warehouses")
	}
	SetFlash(c, "success", "Warehouse deleted successfully!")
	return c.Redirect("/warehouses")
}
