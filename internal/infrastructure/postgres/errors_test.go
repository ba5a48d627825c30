package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/supplychain-console/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de errores de conexión
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyConnError_CredencialesInvalidas(t *testing.T) {
	err := classifyConnError(&pgconn.PgError{Code: "28P01", Message: "password authentication failed"})
	assert.ErrorIs(t, err, domain.ErrAccessDenied, "28P01 debe clasificarse como acceso denegado")
	assert.Contains(t, err.Error(), "password authentication failed", "el mensaje del driver se conserva")
}

func TestClassifyConnError_AutorizacionInvalida(t *testing.T) {
	err := classifyConnError(&pgconn.PgError{Code: "28000", Message: "role does not exist"})
	assert.ErrorIs(t, err, domain.ErrAccessDenied, "28000 debe clasificarse como acceso denegado")
}

func TestClassifyConnError_BaseInexistente(t *testing.T) {
	err := classifyConnError(&pgconn.PgError{Code: "3D000", Message: `database "ghost" does not exist`})
	assert.ErrorIs(t, err, domain.ErrUnknownDatabase, "3D000 debe clasificarse como base desconocida")
}

func TestClassifyConnError_OtroErrorPg(t *testing.T) {
	err := classifyConnError(&pgconn.PgError{Code: "57P03", Message: "the database system is starting up"})
	assert.ErrorIs(t, err, domain.ErrConnection, "otros códigos caen en error de conexión genérico")
	assert.NotErrorIs(t, err, domain.ErrAccessDenied)
	assert.NotErrorIs(t, err, domain.ErrUnknownDatabase)
}

func TestClassifyConnError_ErrorDeRed(t *testing.T) {
	err := classifyConnError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))
	assert.ErrorIs(t, err, domain.ErrConnection, "fallas de red sin PgError son error de conexión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación de errores de sentencia
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyQueryError_ClaveForanea(t *testing.T) {
	err := classifyQueryError("delete customer", &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	assert.ErrorIs(t, err, domain.ErrConstraint, "23503 debe marcarse como violación de constraint")
}

func TestClassifyQueryError_ClaveUnica(t *testing.T) {
	err := classifyQueryError("create customer", &pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	assert.ErrorIs(t, err, domain.ErrConstraint, "23505 debe marcarse como violación de constraint")
}

func TestClassifyQueryError_OtraFalla(t *testing.T) {
	err := classifyQueryError("list customers", errors.New("conn closed"))
	assert.NotErrorIs(t, err, domain.ErrConstraint)
	assert.Contains(t, err.Error(), "list customers", "la operación queda en el mensaje")
	assert.Contains(t, err.Error(), "conn closed")
}
