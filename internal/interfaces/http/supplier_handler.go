package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// SupplierHandler pantallas CRUD de proveedores.
type SupplierHandler struct {
	repo repository.SupplierRepository
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

// List GET /suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "supplier_list", fiber.Map{"Suppliers": suppliers})
}

// AddForm GET /suppliers/add
func (h *SupplierHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "supplier_form", fiber.Map{"FormTitle": "Add New Supplier"})
}

// Add POST /suppliers/add
func (h *SupplierHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "supplier_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding supplier: the ID must be a number")
		return c.Redirect("/suppliers/add")
	}
	supplier := &entity.Supplier{
		ID:      id,
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact"),
		Address: c.FormValue("address"),
	}
	if err := h.repo.Create(c.Context(), supplier); err != nil {
		SetFlash(c, "danger", "Error adding supplier: "+dbMessage(err))
		return c.Redirect("/suppliers/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Supplier '%s' added successfully!", supplier.Name))
	return c.Redirect("/suppliers")
}

// EditForm GET /suppliers/edit/:id
func (h *SupplierHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/suppliers")
	}
	supplier, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/suppliers")
	}
	if supplier == nil {
		SetFlash(c, "warning", "Supplier not found!")
		return c.Redirect("/suppliers")
	}
	return render(c, "supplier_form", fiber.Map{"FormTitle": "Edit Supplier", "Supplier": supplier})
}

// Edit POST /suppliers/edit/:id
func (h *SupplierHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/suppliers")
	}
	supplier := &entity.Supplier{
		ID:      id,
		Name:    c.FormValue("name"),
		Contact: c.FormValue("contact"),
		Address: c.FormValue("address"),
	}
	if err := h.repo.Update(c.Context(), supplier); err != nil {
		SetFlash(c, "danger", "Error updating supplier: "+dbMessage(err))
		return c.Redirect("/suppliers")
	}
	SetFlash(c, "success", fmt.Sprintf("Supplier '%s' updated successfully!", supplier.Name))
	return c.Redirect("/suppliers")
}

// Delete POST /suppliers/delete/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/suppliers")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting supplier. (Check for related manufacturers first)")
		} else {
			SetFlash(c, "danger", "Error deleting supplier: "+dbMessage(err))
		}
		return c.Redirect("/suppliers")
	}
	SetFlash(c, "success", "Supplier deleted successfully!")
	return c.Redirect("/suppliers")
}
