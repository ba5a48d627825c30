package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// ProductHandler pantallas CRUD de productos. Los formularios cargan el select
// de fabricantes desde ManufacturerRepository.ListOptions.
type ProductHandler struct {
	repo          repository.ProductRepository
	manufacturers repository.ManufacturerRepository
}

// NewProductHandler construye el handler.
func NewProductHandler(repo repository.ProductRepository, manufacturers repository.ManufacturerRepository) *ProductHandler {
	return &ProductHandler{repo: repo, manufacturers: manufacturers}
}

// List GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "product_list", fiber.Map{"Products": products})
}

// AddForm GET /products/add
func (h *ProductHandler) AddForm(c *fiber.Ctx) error {
	options, err := h.manufacturers.ListOptions(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/products")
	}
	return render(c, "product_form", fiber.Map{
		"FormTitle":     "Add New Product",
		"Manufacturers": options,
	})
}

// Add POST /products/add
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "product_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding product: the ID must be a number")
		return c.Redirect("/products/add")
	}
	manufacturerID, err := formOptionalInt64(c, "manufacturer_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding product: invalid manufacturer")
		return c.Redirect("/products/add")
	}
	product := &entity.Product{
		ID:             id,
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		SKU:            c.FormValue("sku"),
		ManufacturerID: manufacturerID,
	}
	if err := h.repo.Create(c.Context(), product); err != nil {
		SetFlash(c, "danger", "Error adding product: "+dbMessage(err))
		return c.Redirect("/products/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Product '%s' added successfully!", product.Name))
	return c.Redirect("/products")
}

// EditForm GET /products/edit/:id
func (h *ProductHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/products")
	}
	product, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/products")
	}
	if product == nil {
		SetFlash(c, "warning", "Product not found!")
		return c.Redirect("/products")
	}
	options, err := h.manufacturers.ListOptions(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/products")
	}
	return render(c, "product_form", fiber.Map{
		"FormTitle":     "Edit Product",
		"Product":       product,
		"Manufacturers": options,
	})
}

// Edit POST /products/edit/:id
func (h *ProductHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/products")
	}
	manufacturerID, err := formOptionalInt64(c, "manufacturer_id")
	if err != nil {
		SetFlash(c, "danger", "Error updating product: invalid manufacturer")
		return c.Redirect("/products")
	}
	product := &entity.Product{
		ID:             id,
		Name:           c.FormValue("name"),
		Description:    c.FormValue("description"),
		SKU:            c.FormValue("sku"),
		ManufacturerID: manufacturerID,
	}
	if err := h.repo.Update(c.Context(), product); err != nil {
		SetFlash(c, "danger", "Error updating product: "+dbMessage(err))
		return c.Redirect("/products")
	}
	SetFlash(c, "success", fmt.Sprintf("Product '%s' updated successfully!", product.Name))
	return c.Redirect("/products")
}

// Delete POST /products/delete/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/products")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting product. (Check for related orders or inventory first)")
		} else {
			SetFlash(c, "danger", "Error deleting product: "+dbMessage(err))
		}
		return c.Redirect("/products")
	}
	SetFlash(c, "success", "Product deleted successfully!")
	return c.Redirect("/products")
}
