package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/supplychain-console/internal/domain"
)

// paramID parsea el :id de la ruta como entero.
func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// formInt64 parsea un campo numérico obligatorio del formulario.
func formInt64(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.FormValue(name), 10, 64)
}

// formOptionalInt64 parsea un campo numérico opcional; vacío se traduce a nil (NULL).
func formOptionalInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.FormValue(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// dbMessage convierte un error clasificado en el mensaje que ve el operador.
func dbMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return "Error: Something is wrong with your user name or password"
	case errors.Is(err, domain.ErrUnknownDatabase):
		return "Error: The configured database does not exist"
	case errors.Is(err, domain.ErrConnection):
		return "Error: Could not connect to the database"
	default:
		return "Database error: " + err.Error()
	}
}
