package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/supplychain-console/internal/domain"
	"github.com/tu-usuario/supplychain-console/pkg/config"
)

// stubRows result set en memoria para ejercitar la recolección sin base de datos.
type stubRows struct {
	fields []pgconn.FieldDescription
	values [][]any
	idx    int
	err    error
}

var _ pgx.Rows = (*stubRows)(nil)

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return r.err }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *stubRows) Scan(...any) error                            { return nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.idx >= len(r.values) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Values() ([]any, error) {
	return r.values[r.idx-1], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de reportes
// ──────────────────────────────────────────────────────────────────────────────

// El índice debe listar los diez reportes en orden estable, con sus títulos.
func TestReportCatalog_IndiceCompleto(t *testing.T) {
	repo := NewReportRepository(NewProvider(config.DBConfig{}))
	infos := repo.List()

	require.Len(t, infos, 10, "el catálogo tiene diez reportes fijos")

	wantKeys := []string{
		"top_customers",
		"low_stock",
		"delayed_shipments",
		"warehouse_revenue",
		"overdue_invoices",
		"product_suppliers",
		"vehicle_usage",
		"popular_products",
		"avg_ship_duration",
		"manufacturer_products",
	}
	for i, key := range wantKeys {
		assert.Equal(t, key, infos[i].Key, "reporte en posición %d", i)
		assert.NotEmpty(t, infos[i].Title, "todo reporte tiene título visible")
	}
}

// Una clave desconocida se rechaza antes de abrir sesión contra la base.
func TestReportCatalog_ClaveDesconocidaNoAbreSesion(t *testing.T) {
	provider := NewProvider(config.DBConfig{})
	repo := NewReportRepository(provider)

	result, err := repo.Run(context.Background(), "no_such_report")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUnknownReport)

	acquired, released := provider.Stats()
	assert.Zero(t, acquired, "no debe adquirirse ninguna sesión")
	assert.Zero(t, released)
}

func TestLookupReport(t *testing.T) {
	def, ok := lookupReport("avg_ship_duration")
	require.True(t, ok)
	assert.Equal(t, "Average Shipment Duration", def.Title)

	_, ok = lookupReport("")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recolección de encabezados y filas
// ──────────────────────────────────────────────────────────────────────────────

// Con filas, los encabezados salen de los metadatos del result set y las
// filas conservan su orden.
func TestCollectRows_ConFilas(t *testing.T) {
	headers, data, err := collectRows(&stubRows{
		fields: []pgconn.FieldDescription{{Name: "name"}, {Name: "total_spent"}},
		values: [][]any{
			{"Acme Corp", decimal.RequireFromString("9000.00")},
			{"Globex", decimal.RequireFromString("4500.00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"name", "total_spent"}, headers)
	require.Len(t, data, 2)
	assert.Equal(t, "Acme Corp", data[0][0])
	assert.Equal(t, "Globex", data[1][0])
}

// Con cero filas los encabezados quedan vacíos aunque el result set traiga
// metadatos: las plantillas dependen de ese contrato para la tabla vacía.
func TestCollectRows_SinFilasEncabezadosVacios(t *testing.T) {
	headers, data, err := collectRows(&stubRows{
		fields: []pgconn.FieldDescription{{Name: "invoice_id"}, {Name: "order_id"}},
	})

	require.NoError(t, err)
	assert.Empty(t, headers, "cero filas implica cero encabezados")
	assert.Empty(t, data)
}

// Una falla de iteración se propaga sin resultado parcial.
func TestCollectRows_ErrorDeIteracion(t *testing.T) {
	headers, data, err := collectRows(&stubRows{
		fields: []pgconn.FieldDescription{{Name: "name"}},
		err:    assert.AnError,
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, headers)
	assert.Nil(t, data)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato del promedio de días de despacho
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatAvgDays_Decimal(t *testing.T) {
	got := formatAvgDays(decimal.RequireFromString("3.5"))
	assert.Equal(t, "3.50 days", got)
}

func TestFormatAvgDays_Float(t *testing.T) {
	got := formatAvgDays(float64(2))
	assert.Equal(t, "2.00 days", got)
}

func TestFormatAvgDays_Entero(t *testing.T) {
	got := formatAvgDays(int64(7))
	assert.Equal(t, "7.00 days", got)
}

// Un promedio NULL (nil) pasa intacto: la celda se muestra en blanco.
func TestFormatAvgDays_NuloPasaIntacto(t *testing.T) {
	assert.Nil(t, formatAvgDays(nil))
}
