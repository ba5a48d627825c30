package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// CustomerHandler pantallas CRUD de clientes.
type CustomerHandler struct {
	repo repository.CustomerRepository
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

// List GET /customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "customer_list", fiber.Map{"Customers": customers})
}

// AddForm GET /customers/add
func (h *CustomerHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "customer_form", fiber.Map{"FormTitle": "Add New Customer"})
}

// Add POST /customers/add
func (h *CustomerHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "customer_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding customer: the ID must be a number")
		return c.Redirect("/customers/add")
	}
	customer := &entity.Customer{
		ID:      id,
		Name:    c.FormValue("name"),
		Address: c.FormValue("address"),
		Contact: c.FormValue("contact"),
	}
	if err := h.repo.Create(c.Context(), customer); err != nil {
		SetFlash(c, "danger", "Error adding customer: "+dbMessage(err))
		return c.Redirect("/customers/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Customer '%s' added successfully!", customer.Name))
	return c.Redirect("/customers")
}

// EditForm GET /customers/edit/:id
func (h *CustomerHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/customers")
	}
	customer, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/customers")
	}
	if customer == nil {
		SetFlash(c, "warning", "Customer not found!")
		return c.Redirect("/customers")
	}
	return render(c, "customer_form", fiber.Map{"FormTitle": "Edit Customer", "Customer": customer})
}

// Edit POST /customers/edit/:id
func (h *CustomerHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/customers")
	}
	customer := &entity.Customer{
		ID:      id,
		Name:    c.FormValue("name"),
		Address: c.FormValue("address"),
		Contact: c.FormValue("contact"),
	}
	if err := h.repo.Update(c.Context(), customer); err != nil {
		SetFlash(c, "danger", "Error updating customer: "+dbMessage(err))
		return c.Redirect("/customers")
	}
	SetFlash(c, "success", fmt.Sprintf("Customer '%s' updated successfully!", customer.Name))
	return c.Redirect("/customers")
}

// Delete POST /customers/delete/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/customers")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting customer. (Check for related orders first)")
		} else {
			SetFlash(c, "danger", "Error deleting customer: "+dbMessage(err))
		}
		return c.Redirect("/customers")
	}
	SetFlash(c, "success", "Customer deleted successfully!")
	return c.Redirect("/customers")
}
