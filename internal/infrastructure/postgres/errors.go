package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/supplychain-console/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeInvalidPassword      = "28P01" // invalid_password
	codeInvalidAuthorization = "28000" // invalid_authorization_specification
	codeInvalidCatalogName   = "3D000" // invalid_catalog_name (la base no existe)
	codeUniqueViolation      = "23505" // unique_violation
	codeForeignKeyViolation  = "23503" // foreign_key_violation
)

// classifyConnError convierte una falla al abrir la conexión en un error de dominio:
// credenciales inválidas, base de datos inexistente u otro error de conectividad.
// El mensaje del driver se conserva para mostrarlo al operador.
func classifyConnError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidPassword, codeInvalidAuthorization:
			return fmt.Errorf("%w: %v", domain.ErrAccessDenied, err)
		case codeInvalidCatalogName:
			return fmt.Errorf("%w: %v", domain.ErrUnknownDatabase, err)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrConnection, err)
}

// classifyQueryError envuelve una falla de sentencia. Las violaciones de clave
// única o foránea se marcan como domain.ErrConstraint para que el handler pueda
// sugerir la relación dependiente; el resto se envuelve con la operación.
func classifyQueryError(op string, err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isConstraintViolation verifica si un error es violación de constraint (23505 o 23503).
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation || pgErr.Code == codeForeignKeyViolation
	}
	return false
}
