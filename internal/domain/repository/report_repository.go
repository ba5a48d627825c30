package repository

import "context"

// ReportInfo entrada del índice de reportes.
type ReportInfo struct {
	Key   string
	Title string
}

// ReportResult resultado tabular de un reporte.
// Headers sale de los metadatos del result set; con cero filas queda vacío.
type ReportResult struct {
	Title   string
	Headers []string
	Rows    [][]any
}

// ReportCatalog catálogo fijo de reportes analíticos de solo lectura.
// Run devuelve domain.ErrUnknownReport si la clave no existe (sin tocar la base).
type ReportCatalog interface {
	List() []ReportInfo
	Run(ctx context.Context, key string) (*ReportResult, error)
}
