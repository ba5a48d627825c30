package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/internal/domain/entity"
	"github.com/tu-usuario/supplychain-console/internal/domain/repository"
)

// VehicleHandler pantallas CRUD de vehículos.
type VehicleHandler struct {
	repo repository.VehicleRepository
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(repo repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

// List GET /vehicles
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	vehicles, err := h.repo.List(c.Context())
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/")
	}
	return render(c, "vehicle_list", fiber.Map{"Vehicles": vehicles})
}

// AddForm GET /vehicles/add
func (h *VehicleHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "vehicle_form", fiber.Map{"FormTitle": "Add New Vehicle"})
}

// Add POST /vehicles/add
func (h *VehicleHandler) Add(c *fiber.Ctx) error {
	id, err := formInt64(c, "vehicle_id")
	if err != nil {
		SetFlash(c, "danger", "Error adding vehicle: the ID must be a number")
		return c.Redirect("/vehicles/add")
	}
	capacity, err := formInt64(c, "capacity")
	if err != nil {
		SetFlash(c, "danger", "Error adding vehicle: the capacity must be a number")
		return c.Redirect("/vehicles/add")
	}
	vehicle := &entity.Vehicle{
		ID:           id,
		Type:         c.FormValue("type"),
		LicensePlate: c.FormValue("license_plate"),
		Capacity:     capacity,
		Status:       c.FormValue("status"),
	}
	if err := h.repo.Create(c.Context(), vehicle); err != nil {
		SetFlash(c, "danger", "Error adding vehicle: "+dbMessage(err))
		return c.Redirect("/vehicles/add")
	}
	SetFlash(c, "success", fmt.Sprintf("Vehicle '%s' added successfully!", vehicle.LicensePlate))
	return c.Redirect("/vehicles")
}

// EditForm GET /vehicles/edit/:id
func (h *VehicleHandler) EditForm(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/vehicles")
	}
	vehicle, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		SetFlash(c, "danger", dbMessage(err))
		return c.Redirect("/vehicles")
	}
	if vehicle == nil {
		SetFlash(c, "warning", "Vehicle not found!")
		return c.Redirect("/vehicles")
	}
	return render(c, "vehicle_form", fiber.Map{"FormTitle": "Edit Vehicle", "Vehicle": vehicle})
}

// Edit POST /vehicles/edit/:id
func (h *VehicleHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/vehicles")
	}
	capacity, err := formInt64(c, "capacity")
	if err != nil {
		SetFlash(c, "danger", "Error updating vehicle: the capacity must be a number")
		return c.Redirect("/vehicles")
	}
	vehicle := &entity.Vehicle{
		ID:           id,
		Type:         c.FormValue("type"),
		LicensePlate: c.FormValue("license_plate"),
		Capacity:     capacity,
		Status:       c.FormValue("status"),
	}
	if err := h.repo.Update(c.Context(), vehicle); err != nil {
		SetFlash(c, "danger", "Error updating vehicle: "+dbMessage(err))
		return c.Redirect("/vehicles")
	}
	SetFlash(c, "success", fmt.Sprintf("Vehicle '%s' updated successfully!", vehicle.LicensePlate))
	return c.Redirect("/vehicles")
}

// Delete POST /vehicles/delete/:id
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Redirect("/vehicles")
	}
	if err := h.repo.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			SetFlash(c, "danger", "Error deleting vehicle. (Check for related shipments first)")
		} else {
			SetFlash(c, "danger", "Error deleting vehicle: "+dbMessage(err))
		}
		return c.Redirect("/vehicles")
	}
	SetFlash(c, "success", "Vehicle deleted successfully!")
	return c.Redirect("/vehicles")
}
