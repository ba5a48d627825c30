package http_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/supplychain-console/internal/interfaces/http"
	"github.com/tu-usuario/supplychain-console/web"
)

// El mensaje dejado en una petición aparece en la siguiente página y la
// cookie se expira al mostrarse (no se repite al refrescar).
func TestFlash_IdaYVuelta(t *testing.T) {
	app := fiber.New(fiber.Config{Views: web.Engine()})
	app.Get("/set", func(c *fiber.Ctx) error {
		apphttp.SetFlash(c, "success", "Customer 'Acme' added successfully!")
		return c.Redirect("/customers")
	})
	apphttp.Router(app, apphttp.RouterDeps{Customers: &fakeCustomers{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil), -1)
	require.NoError(t, err)
	f := flashFrom(t, resp)
	assert.Equal(t, "success", f.Category)

	// Segunda petición con la cookie: el layout muestra el alert y la expira.
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	for _, ck := range resp.Cookies() {
		if ck.Name == "flash" {
			req.AddCookie(ck)
		}
	}
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	body := readBody(t, resp2)
	assert.Contains(t, body, "alert-success")
	assert.Contains(t, body, "added successfully!")

	expired := false
	for _, ck := range resp2.Cookies() {
		if ck.Name == "flash" && ck.Value == "" {
			expired = true
		}
	}
	assert.True(t, expired, "la cookie flash debe expirarse al mostrarse")
}

// Una cookie corrupta se ignora en silencio.
func TestFlash_CookieCorrupta(t *testing.T) {
	app := fiber.New(fiber.Config{Views: web.Engine()})
	apphttp.Router(app, apphttp.RouterDeps{Customers: &fakeCustomers{}})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "!!!not-base64!!!"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.NotContains(t, body, "alert-", "no debe renderizarse ningún alert")
}

// La llave derivada de la SECRET_KEY es determinística y sirve para AES-256.
func TestEncryptionKey(t *testing.T) {
	k1 := apphttp.EncryptionKey("a_fallback_secret_key_for_local_dev")
	k2 := apphttp.EncryptionKey("a_fallback_secret_key_for_local_dev")
	assert.Equal(t, k1, k2)

	raw, err := base64.StdEncoding.DecodeString(k1)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	assert.NotEqual(t, k1, apphttp.EncryptionKey("otro-secreto"))
}
