package http

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Flash mensaje transitorio de una petición a la siguiente (success, warning, danger).
// Viaja en una cookie que el middleware encryptcookie cifra con la SECRET_KEY.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// EncryptionKey deriva la llave AES del middleware encryptcookie a partir de la
// SECRET_KEY de la aplicación (32 bytes en base64).
func EncryptionKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SetFlash deja un mensaje para mostrar en la siguiente página renderizada.
func SetFlash(c *fiber.Ctx, category, message string) {
	b, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HTTPOnly: true,
	})
}

// PopFlash lee y borra el mensaje pendiente. Devuelve nil si no hay ninguno
// o si la cookie no se puede decodificar.
func PopFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:    flashCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	return &f
}

// render renderiza una vista con el layout común inyectando el flash pendiente.
func render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flash"] = PopFlash(c)
	return c.Render(name, bind, "layouts/main")
}
