package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/supplychain-console/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Release: idempotente y tolerante a nil
// ──────────────────────────────────────────────────────────────────────────────

// Liberar una sesión nil (el caso del defer cuando Acquire falló) no entra en
// pánico ni altera los contadores.
func TestProviderRelease_SesionNil(t *testing.T) {
	provider := NewProvider(config.DBConfig{})

	assert.NotPanics(t, func() { provider.Release(nil) })

	acquired, released := provider.Stats()
	assert.Zero(t, acquired)
	assert.Zero(t, released)
}

// Una sesión sin conexión subyacente tampoco cuenta como liberación.
func TestProviderRelease_SesionSinConexion(t *testing.T) {
	provider := NewProvider(config.DBConfig{})

	assert.NotPanics(t, func() { provider.Release(&Session{}) })

	_, released := provider.Stats()
	assert.Zero(t, released)
}

// Liberar dos veces la misma sesión no incrementa el contador dos veces:
// el primer Release anula la conexión y el segundo es un no-op.
func TestProviderRelease_DobleLiberacion(t *testing.T) {
	provider := NewProvider(config.DBConfig{})
	sess := &Session{}

	provider.Release(sess)
	provider.Release(sess)

	acquired, released := provider.Stats()
	assert.Zero(t, acquired)
	assert.Zero(t, released, "sin conexión subyacente no debe contarse ninguna liberación")
	assert.Nil(t, sess.Conn())
}
