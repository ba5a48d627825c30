package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// ManufacturerHandler pantallas CRUD de fabricantes.
type ManufacturerHandler struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerHandler construye el handler.
func NewManufacturerHandler(repo repository.ManufacturerRepository) *ManufacturerHandler {
	return &ManufacturerHandler{repo: repo}
}

// List GET /manufacturers
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	manufacturers, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "manufacturer_list", fiber.Map{"Manufacturers": manufacturers})
}

// AddForm GET /manufacturers/add
func (h *ManufacturerHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "manufacturer_form", fiber.Map{"FormTitle": "Add New Manufacturer"})
}

// Add POST /manufacturers/add
func (h *ManufacturerHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "manufacturer_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding manufacturer: the ID must be a number")
		return c.Redirect("/manufacturers/add")
	}
	manufacturer := &entity.Manufacturer{
		ID:      id,
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact"),
		Address: c.FormValue("address"),
	}
	if err := h.repo.Create(c.Context(), manufacturer); err != nil {
		SetFlash(c, "danger", "Error adding manufacturer: "+dbMessage(err))
		return c.Redirect("/manufacturers/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Manufacturer '%s' added successfully!", manufacturer.Name))
	return c.Redirect("/manufacturers")
}

// EditForm GET /manufacturers/edit/:id
func (h *ManufacturerHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/manufacturers")
	}
	manufacturer, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/manufacturers")
	}
	if manufacturer == nil {
		SetFlash(c, "warning", "Manufacturer not found!")
		return c.Redirect("/manufacturers")
	}
	return render(c, "manufacturer_form", fiber.Map{"FormTitle": "Edit Manufacturer", "Manufacturer": manufacturer})
}

// Edit POST /manufacturers/edit/:id
func (h *ManufacturerHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/manufacturers")
	}
	manufacturer := &entity.Manufacturer{
		ID:      id,
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact"),
		Address: c.FormValue("address"),
	}
	if err := h.repo.Update(c.Context(), manufacturer); err != nil {
		SetFlash(c, "danger", "Error updating manufacturer: "+dbMessage(err))
		return c.Redirect("/manufacturers")
	}
	SetFlash(c, "success", fmt.Sprintf("Manufacturer '%s' updated successfully!", manufacturer.Name))
	return c.Redirect("/manufacturers")
}

// Delete POST /manufacturers/delete/:id
func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/manufacturers")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting manufacturer. (Check for related products/suppliers first)")
		} else {
			SetFlash(c, "danger", "Error deleting manufacturer: "+dbMessage(err))
		}
		return c.Redirect("/manufacturers")
	}
	SetFlash(c, "success", "Manufacturer deleted successfully!")
	return c.Redirect("/manufacturers")
}
