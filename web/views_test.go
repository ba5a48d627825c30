package web

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_CargaPlantillas(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load(), "las plantillas embebidas deben compilar")
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-05-17", formatDate(d))
	assert.Equal(t, "2024-05-17", formatDate(&d))
	assert.Equal(t, "", formatDate((*time.Time)(nil)))
	assert.Equal(t, "", formatDate(nil))
}

func TestFormatCell(t *testing.T) {
	d := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	amount := decimal.RequireFromString("1250.50")
	name := "Acme Corp"
	var noName *string

	assert.Equal(t, "", formatCell(nil), "NULL queda en blanco")
	assert.Equal(t, "Acme Corp", formatCell(name))
	assert.Equal(t, "Acme Corp", formatCell(&name))
	assert.Equal(t, "", formatCell(noName))
	assert.Equal(t, "1250.5", formatCell(amount))
	assert.Equal(t, "2024-05-17", formatCell(d))
	assert.Equal(t, "42", formatCell(int64(42)))
}
