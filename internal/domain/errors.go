package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Los tres primeros clasifican fallas al abrir la conexión. "No encontrado" no
// es un error: los repositorios devuelven (nil, nil) y el handler lo convierte
// en un mensaje de advertencia.
var (
	ErrAccessDenied    = errors.New("usuario o contraseña de la base de datos inválidos")
	ErrUnknownDatabase = errors.New("la base de datos no existe")
	ErrConnection      = errors.New("error de conexión a la base de datos")
	ErrConstraint      = errors.New("violación de restricción de integridad")
	ErrUnknownReport   = errors.New("reporte desconocido")
)
